package dashboarding

import (
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/pkg/utils"
)

const (
	// Limite de linhas da tabela de itens recentes
	maxTableRows = 4

	// Quantidade de meses da série de atividade dos gráficos
	activityMonths = 6

	// Limite de entradas da memoização antes de um flush completo.
	// O cache cresce uma entrada por (role, usuário, versões) e é
	// descartado por inteiro quando estoura, sem política de LRU.
	maxCacheEntries = 256
)

// Baselines fixas usadas apenas para o delta cosmético de tendência dos cards
const (
	baselineSavedProperties = 10
	baselineAppointments    = 3
	baselineTotalProperties = 15
	baselineActiveListings  = 5
	baselineTotalUsers      = 500
	baselineAllProperties   = 300
	baselineAgencies        = 50
)

// cacheKey identifica um resultado memoizado: o recálculo acontece somente
// quando o role, o usuário ou a versão de alguma das cinco coleções muda.
type cacheKey struct {
	role     domain.Role
	viewer   string
	versions domain.InputVersions
}

// cachedResult guarda as projeções derivadas de uma chave de entrada
type cachedResult struct {
	metrics  []domain.MetricCard
	rows     []domain.TableRow
	activity []domain.ActivityPoint
}

// Service implementa o Aggregator com memoização por versão de coleção
type Service struct {
	mu    sync.Mutex
	cache map[cacheKey]*cachedResult
	now   func() time.Time
}

// NewService cria uma nova instância do agregador do dashboard
func NewService() *Service {
	return &Service{
		cache: make(map[cacheKey]*cachedResult),
		now:   time.Now,
	}
}

// Metrics deriva os 3 cards de resumo do role informado
func (s *Service) Metrics(role domain.Role, inputs *domain.DashboardInputs) []domain.MetricCard {
	return s.derive(role, inputs).metrics
}

// TableRows deriva a projeção tabular (até 4 linhas) do role informado
func (s *Service) TableRows(role domain.Role, inputs *domain.DashboardInputs) []domain.TableRow {
	return s.derive(role, inputs).rows
}

// Overview monta a resposta completa do dashboard para o usuário logado.
// Como todo o agregador, é uma função total: inputs ausentes valem vazio.
func (s *Service) Overview(role domain.Role, displayName string, inputs *domain.DashboardInputs) *domain.DashboardOverview {
	if inputs == nil {
		inputs = &domain.DashboardInputs{}
	}

	result := s.derive(role, inputs)

	if displayName == "" {
		displayName = "User"
	}

	overview := &domain.DashboardOverview{
		Heading:      headingForRole(role),
		DisplayName:  displayName,
		MemberLabel:  role.DisplayLabel() + " Member",
		Metrics:      result.metrics,
		TableHeading: tableHeadingForRole(role),
		TableRows:    result.rows,
		Activity:     result.activity,
		Versions:     inputs.Versions,
	}

	if len(result.rows) == 0 {
		overview.EmptyMessage = emptyMessageForRole(role)
	}

	return overview
}

// derive retorna o resultado memoizado para a chave (role, usuário, versões),
// recalculando apenas quando alguma entrada mudou de versão.
func (s *Service) derive(role domain.Role, inputs *domain.DashboardInputs) *cachedResult {
	if inputs == nil {
		inputs = &domain.DashboardInputs{}
	}

	key := cacheKey{
		role:     role,
		viewer:   inputs.ViewerEmail,
		versions: inputs.Versions,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[key]; ok {
		return cached
	}

	if len(s.cache) >= maxCacheEntries {
		logrus.WithField("entries", len(s.cache)).Debug("dashboard: limpando cache de agregação")
		s.cache = make(map[cacheKey]*cachedResult)
	}

	result := &cachedResult{
		metrics:  computeMetrics(role, inputs),
		rows:     computeTableRows(role, inputs),
		activity: computeActivity(role, inputs, s.now()),
	}

	s.cache[key] = result

	return result
}

// computeMetrics seleciona os 3 cards conforme o role. Roles desconhecidos
// (inclusive vazio) caem no ramo de admin.
func computeMetrics(role domain.Role, inputs *domain.DashboardInputs) []domain.MetricCard {
	switch role {
	case domain.RoleBuyer:
		purchased := countAppointmentsByStatus(inputs.BuyerAppointments, domain.AppointmentStatusCompleted)

		return []domain.MetricCard{
			{
				Title: "Saved Properties",
				Value: len(inputs.Favourites),
				Icon:  domain.IconHeart,
				Trend: trendOverBaseline(len(inputs.Favourites), baselineSavedProperties),
			},
			{
				Title: "Appointments",
				Value: len(inputs.BuyerAppointments),
				Icon:  domain.IconCalendar,
				Trend: trendOverBaseline(len(inputs.BuyerAppointments), baselineAppointments),
			},
			{
				Title: "Purchased",
				Value: purchased,
				Icon:  domain.IconHome,
				Trend: "0",
			},
		}

	case domain.RoleSeller:
		active := countPropertiesByStatus(inputs.OwnerProperties, domain.PropertyStatusApproved)
		sold := countPropertiesByStatus(inputs.OwnerProperties, domain.PropertyStatusSold)

		return []domain.MetricCard{
			{
				Title: "Total Properties",
				Value: len(inputs.OwnerProperties),
				Icon:  domain.IconBuilding,
				Trend: trendOverBaseline(len(inputs.OwnerProperties), baselineTotalProperties),
			},
			{
				Title: "Active Listings",
				Value: active,
				Icon:  domain.IconCalendar,
				Trend: trendOverBaseline(active, baselineActiveListings),
			},
			{
				Title: "Sold",
				Value: sold,
				Icon:  domain.IconMoney,
				Trend: "+1",
			},
		}

	default:
		agencies := countDistinctAgencies(inputs.AllProperties)

		return []domain.MetricCard{
			{
				Title: "Total Users",
				Value: len(inputs.AllUsers),
				Icon:  domain.IconUsers,
				Trend: trendOverBaseline(len(inputs.AllUsers), baselineTotalUsers),
			},
			{
				Title: "Total Properties",
				Value: len(inputs.AllProperties),
				Icon:  domain.IconBuilding,
				Trend: trendOverBaseline(len(inputs.AllProperties), baselineAllProperties),
			},
			{
				Title: "Active Agencies",
				Value: agencies,
				Icon:  domain.IconMoney,
				Trend: trendOverBaseline(agencies, baselineAgencies),
			},
		}
	}
}

// computeTableRows projeta os primeiros itens da coleção do role na ordem em
// que chegaram da fonte. Não há ordenação própria nem semântica de "mais
// recente" além da ordem da coleção de origem.
func computeTableRows(role domain.Role, inputs *domain.DashboardInputs) []domain.TableRow {
	switch role {
	case domain.RoleBuyer:
		rows := make([]domain.TableRow, 0, maxTableRows)
		for _, fav := range inputs.Favourites {
			if len(rows) == maxTableRows {
				break
			}
			rows = append(rows, domain.TableRow{
				ID:     len(rows) + 1,
				Name:   fallback(fav.Title, "Property"),
				Status: "Saved",
				Price:  utils.FormatPrice(fav.Price),
			})
		}
		return rows

	case domain.RoleSeller:
		return propertyRows(inputs.OwnerProperties, domain.PropertyStatusPending)

	default:
		return propertyRows(inputs.AllProperties, domain.PropertyStatusApproved)
	}
}

// propertyRows projeta imóveis em linhas da tabela, com o status default do
// role quando o item não tem status próprio. O default chega capitalizado
// ("Pending"/"Approved") para exibição direta.
func propertyRows(properties []*domain.Property, defaultStatus string) []domain.TableRow {
	capitalized := map[string]string{
		domain.PropertyStatusPending:  "Pending",
		domain.PropertyStatusApproved: "Approved",
	}

	rows := make([]domain.TableRow, 0, maxTableRows)
	for _, prop := range properties {
		if len(rows) == maxTableRows {
			break
		}
		rows = append(rows, domain.TableRow{
			ID:     len(rows) + 1,
			Name:   fallback(prop.Title, "Property"),
			Status: fallback(prop.Status, capitalized[defaultStatus]),
			Price:  utils.FormatPrice(prop.Price),
		})
	}
	return rows
}

// computeActivity deriva a série mensal dos gráficos: contagem de itens da
// coleção do role criados em cada um dos últimos meses.
func computeActivity(role domain.Role, inputs *domain.DashboardInputs, now time.Time) []domain.ActivityPoint {
	byMonth := make(map[string]int)

	switch role {
	case domain.RoleBuyer:
		for _, fav := range inputs.Favourites {
			byMonth[fav.CreatedAt.Format("2006-01")]++
		}
	case domain.RoleSeller:
		for _, prop := range inputs.OwnerProperties {
			byMonth[prop.CreatedAt.Format("2006-01")]++
		}
	default:
		for _, prop := range inputs.AllProperties {
			byMonth[prop.CreatedAt.Format("2006-01")]++
		}
	}

	points := make([]domain.ActivityPoint, 0, activityMonths)

	// Do mês mais antigo para o atual
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := activityMonths - 1; i >= 0; i-- {
		month := firstOfMonth.AddDate(0, -i, 0)
		points = append(points, domain.ActivityPoint{
			Month: month.Format("Jan"),
			Value: byMonth[month.Format("2006-01")],
		})
	}

	return points
}

func countAppointmentsByStatus(appointments []*domain.Appointment, status string) int {
	count := 0
	for _, appointment := range appointments {
		if appointment.Status == status {
			count++
		}
	}
	return count
}

func countPropertiesByStatus(properties []*domain.Property, status string) int {
	count := 0
	for _, property := range properties {
		if property.Status == status {
			count++
		}
	}
	return count
}

// countDistinctAgencies conta agências distintas ignorando duplicados
// e imóveis sem agência vinculada
func countDistinctAgencies(properties []*domain.Property) int {
	seen := make(map[string]struct{})
	for _, property := range properties {
		if property.AgencyID == "" {
			continue
		}
		seen[property.AgencyID] = struct{}{}
	}
	return len(seen)
}

// trendOverBaseline formata o delta de tendência: "+N" com N nunca negativo
func trendOverBaseline(value, baseline int) string {
	delta := value - baseline
	if delta < 0 {
		delta = 0
	}
	return "+" + strconv.Itoa(delta)
}

func headingForRole(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "Admin Overview"
	case domain.RoleSeller:
		return "Seller Dashboard"
	default:
		return "My Dashboard"
	}
}

func tableHeadingForRole(role domain.Role) string {
	switch role {
	case domain.RoleBuyer:
		return "Saved Properties"
	case domain.RoleSeller:
		return "My Properties"
	default:
		return "Recent Properties"
	}
}

// emptyMessageForRole retorna a mensagem de estado vazio da tabela por role
func emptyMessageForRole(role domain.Role) string {
	switch role {
	case domain.RoleBuyer:
		return "No saved properties yet"
	case domain.RoleSeller:
		return "No properties listed yet"
	default:
		return "No properties in database"
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
