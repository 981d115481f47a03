package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/estate-dashboard-api/pkg/middleware"
)

func dashboardRequest(claims *domain.Claims) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	if claims != nil {
		ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, claims)
		req = req.WithContext(ctx)
	}
	return req
}

func TestGetDashboard(t *testing.T) {
	store := scheduler.NewSnapshotStore()
	store.SetProperties([]*domain.Property{
		{ID: "p1", Title: "Casa na Praia", Price: 450000, Status: domain.PropertyStatusApproved, OwnerEmail: "vendedor@example.com", AgencyID: "ag-1"},
		{ID: "p2", Title: "Apartamento Centro", Price: 320000, Status: domain.PropertyStatusPending, OwnerEmail: "vendedor@example.com"},
	})
	store.SetUsers([]*domain.User{{ID: 1}, {ID: 2}})
	store.SetFavourites([]*domain.Favourite{
		{ID: 1, UserEmail: "ana@example.com", Title: "Casa na Praia", Price: 450000},
	})

	aggregator := dashboarding.NewService()
	handler := GetDashboard(aggregator, store)

	tests := []struct {
		name     string
		claims   *domain.Claims
		validate func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Buyer recebe favoritos",
			claims: &domain.Claims{
				UserID:    1,
				UserName:  "Ana",
				UserEmail: "ana@example.com",
				UserRole:  domain.RoleBuyer,
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var overview domain.DashboardOverview
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&overview))

				assert.Equal(t, "My Dashboard", overview.Heading)
				assert.Equal(t, "Ana", overview.DisplayName)
				require.Len(t, overview.Metrics, 3)
				assert.Equal(t, "Saved Properties", overview.Metrics[0].Title)
				assert.Equal(t, 1, overview.Metrics[0].Value)
				require.Len(t, overview.TableRows, 1)
				assert.Equal(t, "Casa na Praia", overview.TableRows[0].Name)
			},
		},
		{
			name: "Seller recebe o recorte de proprietário",
			claims: &domain.Claims{
				UserID:    2,
				UserName:  "Bruno",
				UserEmail: "vendedor@example.com",
				UserRole:  domain.RoleSeller,
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var overview domain.DashboardOverview
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&overview))

				assert.Equal(t, "Seller Dashboard", overview.Heading)
				assert.Equal(t, "Total Properties", overview.Metrics[0].Title)
				assert.Equal(t, 2, overview.Metrics[0].Value)
				assert.Len(t, overview.TableRows, 2)
			},
		},
		{
			name: "Role desconhecido é atendido com a visão default",
			claims: &domain.Claims{
				UserID:    3,
				UserName:  "Carla",
				UserEmail: "carla@example.com",
				UserRole:  domain.Role("supervisor"),
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var overview domain.DashboardOverview
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&overview))

				// Métricas com a forma de admin, cabeçalho default
				assert.Equal(t, "My Dashboard", overview.Heading)
				assert.Equal(t, "Total Users", overview.Metrics[0].Title)
				assert.Equal(t, 2, overview.Metrics[0].Value)
			},
		},
		{
			name:   "Sem claims no contexto",
			claims: nil,
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, dashboardRequest(tt.claims))

			tt.validate(t, recorder)
		})
	}
}
