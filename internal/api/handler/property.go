package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/estate-dashboard-api/pkg/log"
	"github.com/vfg2006/estate-dashboard-api/pkg/middleware"
)

// ListProperties retorna o catálogo de imóveis: o admin vê tudo, o vendedor
// vê apenas os próprios anúncios
func ListProperties(propertyRepo repository.PropertyRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var properties []*domain.Property
		var err error

		if userClaims.UserRole == domain.RoleSeller {
			properties, err = propertyRepo.ListPropertiesByOwner(userClaims.UserEmail)
		} else {
			properties, err = propertyRepo.ListProperties()
		}

		if err != nil {
			logrus.Error("Erro ao listar imóveis:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar imóveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(properties); err != nil {
			logrus.Error("Erro ao enviar resposta de imóveis:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateProperty cadastra um novo imóvel do vendedor logado, com status
// inicial "pending" até a moderação do admin
func CreateProperty(propertyRepo repository.PropertyRepository, syncService *scheduler.DashboardSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Title == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título do imóvel é obrigatório", nil)
			return
		}

		if req.Price < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço não pode ser negativo", nil)
			return
		}

		property := &domain.Property{
			Title:      req.Title,
			Price:      req.Price,
			AgencyID:   req.AgencyID,
			OwnerEmail: userClaims.UserEmail,
		}

		property, err := propertyRepo.CreateProperty(property)
		if err != nil {
			logger.WithError(err).Error("properties: erro ao cadastrar imóvel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar imóvel", nil)
			return
		}

		// Atualiza o snapshot do catálogo para o dashboard refletir a escrita
		if err := syncService.RefreshProperties(); err != nil {
			logger.WithError(err).Warn("properties: erro ao atualizar snapshot após cadastro")
		}

		logger.WithFields(log.Fields{
			"property_id": property.ID,
			"owner_email": property.OwnerEmail,
		}).Info("properties: imóvel cadastrado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(property); err != nil {
			logger.WithError(err).Error("properties: erro ao codificar resposta")
		}
	}
}

// UpdatePropertyStatus muda o status de um imóvel (moderação do admin:
// pending -> approved -> sold)
func UpdatePropertyStatus(propertyRepo repository.PropertyRepository, syncService *scheduler.DashboardSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do imóvel não informado", nil)
			return
		}

		var req domain.UpdatePropertyStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if !domain.IsValidPropertyStatus(req.Status) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPropertyStatus, "Status de imóvel inválido", map[string]any{
				"status": req.Status,
			})
			return
		}

		property, err := propertyRepo.GetPropertyByID(id)
		if err != nil {
			logger.WithError(err).Error("properties: erro ao buscar imóvel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar imóvel", nil)
			return
		}

		if property == nil {
			apiErrors.WriteError(w, apiErrors.ErrPropertyNotFound, "Imóvel não encontrado", nil)
			return
		}

		if err := propertyRepo.UpdatePropertyStatus(id, req.Status); err != nil {
			logger.WithError(err).Error("properties: erro ao atualizar status do imóvel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status do imóvel", nil)
			return
		}

		if err := syncService.RefreshProperties(); err != nil {
			logger.WithError(err).Warn("properties: erro ao atualizar snapshot após moderação")
		}

		logger.WithFields(log.Fields{
			"property_id": id,
			"status":      req.Status,
		}).Info("properties: status do imóvel atualizado")

		w.WriteHeader(http.StatusNoContent)
	}
}
