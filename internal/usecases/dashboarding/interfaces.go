package dashboarding

import (
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
)

// Aggregator define a interface do agregador do dashboard.
// Todas as operações são puras sobre os snapshots recebidos e nunca falham:
// coleções ausentes contam como vazias e campos ausentes degradam para os
// fallbacks de exibição.
type Aggregator interface {
	// Metrics deriva os 3 cards de resumo do role informado
	Metrics(role domain.Role, inputs *domain.DashboardInputs) []domain.MetricCard

	// TableRows deriva a projeção tabular (até 4 linhas) do role informado
	TableRows(role domain.Role, inputs *domain.DashboardInputs) []domain.TableRow

	// Overview monta a resposta completa do dashboard (cards, tabela,
	// cabeçalhos, série de atividade e mensagens de estado vazio)
	Overview(role domain.Role, displayName string, inputs *domain.DashboardInputs) *domain.DashboardOverview
}
