package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/estate-dashboard-api/pkg/log"
)

// CronJobTypeAll dispara a atualização de todas as coleções de uma vez.
// Os demais tipos aceitos são os nomes das coleções do snapshot.
const CronJobTypeAll = "all"

// RunCronJob executa manualmente a atualização de uma coleção do snapshot
func RunCronJob(syncService *scheduler.DashboardSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var err error

		switch cronType {
		case CronJobTypeAll:
			err = syncService.RefreshAll()
		case scheduler.CollectionProperties,
			scheduler.CollectionUsers,
			scheduler.CollectionFavourites,
			scheduler.CollectionAppointments:
			err = syncService.Refresh(cronType)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: properties, users, favourites, appointments, all", nil)
			return
		}

		if err != nil {
			logger.WithError(err).WithField("type", cronType).Error("cron: erro ao executar atualização manual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar cron job", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: atualização manual executada")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de atualização de cada coleção
func GetCronStatus(syncService *scheduler.DashboardSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(syncService.Status())
	}
}
