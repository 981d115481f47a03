package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/estate-dashboard-api/pkg/log"
	"github.com/vfg2006/estate-dashboard-api/pkg/middleware"
)

// ListMyFavourites retorna os imóveis salvos pelo comprador logado
func ListMyFavourites(favouriteRepo repository.FavouriteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		favourites, err := favouriteRepo.ListFavouritesByUser(userClaims.UserEmail)
		if err != nil {
			logger.WithError(err).Error("favourites: erro ao listar favoritos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar favoritos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(favourites); err != nil {
			logger.WithError(err).Error("favourites: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// AddFavourite salva um imóvel na lista do comprador logado. Título e preço
// são desnormalizados do catálogo no momento do salvamento.
func AddFavourite(
	favouriteRepo repository.FavouriteRepository,
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

		var req domain.AddFavouriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.PropertyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do imóvel é obrigatório", nil)
			return
		}

		property, err := propertyRepo.GetPropertyByID(req.PropertyID)
		if err != nil {
			logger.WithError(err).Error("favourites: erro ao buscar imóvel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar imóvel", nil)
			return
		}

		if property == nil {
			apiErrors.WriteError(w, apiErrors.ErrPropertyNotFound, "Imóvel não encontrado", nil)
			return
		}

		favourite := &domain.Favourite{
			UserEmail:  userClaims.UserEmail,
			PropertyID: property.ID,
			Title:      property.Title,
			Price:      property.Price,
		}

		favourite, err = favouriteRepo.AddFavourite(favourite)
		if err != nil {
			logger.WithError(err).Error("favourites: erro ao salvar favorito")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar favorito", nil)
			return
		}

		if err := syncService.RefreshFavourites(); err != nil {
			logger.WithError(err).Warn("favourites: erro ao atualizar snapshot após salvamento")
		}

		logger.WithFields(log.Fields{
			"user_email":  userClaims.UserEmail,
			"property_id": property.ID,
		}).Info("favourites: imóvel salvo")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(favourite); err != nil {
			logger.WithError(err).Error("favourites: erro ao codificar resposta")
		}
	}
}

// RemoveFavourite remove um imóvel salvo da lista do comprador logado
func RemoveFavourite(favouriteRepo repository.FavouriteRepository, syncService *scheduler.DashboardSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		idParam := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de favorito inválido", nil)
			return
		}

		err = favouriteRepo.RemoveFavourite(id, userClaims.UserEmail)
		if errors.Is(err, sql.ErrNoRows) {
			apiErrors.WriteError(w, apiErrors.ErrFavouriteNotFound, "Favorito não encontrado", nil)
			return
		}
		if err != nil {
			logger.WithError(err).Error("favourites: erro ao remover favorito")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover favorito", nil)
			return
		}

		if err := syncService.RefreshFavourites(); err != nil {
			logger.WithError(err).Warn("favourites: erro ao atualizar snapshot após remoção")
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
