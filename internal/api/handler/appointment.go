package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/estate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/estate-dashboard-api/pkg/log"
	"github.com/vfg2006/estate-dashboard-api/pkg/middleware"
	"github.com/vfg2006/estate-dashboard-api/pkg/utils"
)

// ListMyAppointments retorna as visitas agendadas pelo comprador logado
func ListMyAppointments(appointmentRepo repository.AppointmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		appointments, err := appointmentRepo.ListAppointmentsByBuyer(userClaims.UserEmail)
		if err != nil {
			logger.WithError(err).Error("appointments: erro ao listar agendamentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar agendamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(appointments); err != nil {
			logger.WithError(err).Error("appointments: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateAppointment agenda uma visita a um imóvel para o comprador logado
func CreateAppointment(
	appointmentRepo repository.AppointmentRepository,
	propertyRepo repository.PropertyRepository,
	syncService *scheduler.DashboardSyncService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.PropertyID == "" || req.ScheduledAt == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Imóvel e data da visita são obrigatórios", nil)
			return
		}

		scheduledAt, err := utils.ParseDate(req.ScheduledAt)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da visita inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		property, err := propertyRepo.GetPropertyByID(req.PropertyID)
		if err != nil {
			logger.WithError(err).Error("appointments: erro ao buscar imóvel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar imóvel", nil)
			return
		}

		if property == nil {
			apiErrors.WriteError(w, apiErrors.ErrPropertyNotFound, "Imóvel não encontrado", nil)
			return
		}

		appointment := &domain.Appointment{
			BuyerEmail:  userClaims.UserEmail,
			PropertyID:  property.ID,
			Status:      domain.AppointmentStatusScheduled,
			ScheduledAt: *scheduledAt,
		}

		appointment, err = appointmentRepo.CreateAppointment(appointment)
		if err != nil {
			logger.WithError(err).Error("appointments: erro ao criar agendamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar agendamento", nil)
			return
		}

		if err := syncService.RefreshAppointments(); err != nil {
			logger.WithError(err).Warn("appointments: erro ao atualizar snapshot após agendamento")
		}

		logger.WithFields(log.Fields{
			"buyer_email": userClaims.UserEmail,
			"property_id": property.ID,
			"scheduled":   req.ScheduledAt,
		}).Info("appointments: visita agendada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(appointment); err != nil {
			logger.WithError(err).Error("appointments: erro ao codificar resposta")
		}
	}
}
