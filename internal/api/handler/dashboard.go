package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/estate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/estate-dashboard-api/pkg/log"
	"github.com/vfg2006/estate-dashboard-api/pkg/middleware"
)

// GetDashboard retorna o dashboard completo do usuário logado: cards de
// métricas, tabela de itens recentes, série de atividade e cabeçalhos,
// todos derivados do snapshot atual conforme o role do token.
func GetDashboard(aggregator dashboarding.Aggregator, store *scheduler.SnapshotStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		inputs := store.InputsFor(userClaims.UserEmail)
		overview := aggregator.Overview(userClaims.UserRole, userClaims.UserName, inputs)

		logger.WithFields(log.Fields{
			"user_email": userClaims.UserEmail,
			"role":       userClaims.UserRole,
			"metrics":    len(overview.Metrics),
			"table_rows": len(overview.TableRows),
		}).Info("dashboard: visão agregada gerada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
