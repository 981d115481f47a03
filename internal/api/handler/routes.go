package handler

import (
	"net/http"

	"github.com/vfg2006/estate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/estate-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/estate-dashboard-api/internal/domain"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/estate-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/estate-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			// Sem middleware de role: usuários com role desconhecido ainda
			// recebem o perfil e o dashboard padrão
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Dashboard(aggregator dashboarding.Aggregator, store *scheduler.SnapshotStore) []router.Route {
	return []router.Route{
		{
			// Sem middleware de role: roles desconhecidos caem no ramo
			// padrão (visão de admin) em vez de serem rejeitados
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(aggregator, store),
		},
	}
}

func Properties(propertyRepo repository.PropertyRepository, syncService *scheduler.DashboardSyncService) []router.Route {
	return []router.Route{
		{
			// Admin lista o catálogo completo, vendedor lista os próprios
			// anúncios; compradores consultam via favoritos/agendamentos
			Path:    "/v1/properties",
			Method:  http.MethodGet,
			Handler: ListProperties(propertyRepo),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.RoleMiddleware([]domain.Role{domain.RoleAdmin, domain.RoleSeller}),
			},
		},
		{
			Path:        "/v1/properties",
			Method:      http.MethodPost,
			Handler:     CreateProperty(propertyRepo, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.SellerOnly()},
		},
		{
			Path:        "/v1/properties/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdatePropertyStatus(propertyRepo, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Favourites(
	favouriteRepo repository.FavouriteRepository,
	propertyRepo repository.PropertyRepository,
	syncService *scheduler.DashboardSyncService,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/favourites",
			Method:      http.MethodGet,
			Handler:     ListMyFavourites(favouriteRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.BuyerOnly()},
		},
		{
			Path:        "/v1/favourites",
			Method:      http.MethodPost,
			Handler:     AddFavourite(favouriteRepo, propertyRepo, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.BuyerOnly()},
		},
		{
			Path:        "/v1/favourites/:id",
			Method:      http.MethodDelete,
			Handler:     RemoveFavourite(favouriteRepo, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.BuyerOnly()},
		},
	}
}

func Appointments(
	appointmentRepo repository.AppointmentRepository,
	propertyRepo repository.PropertyRepository,
	syncService *scheduler.DashboardSyncService,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/appointments",
			Method:      http.MethodGet,
			Handler:     ListMyAppointments(appointmentRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.BuyerOnly()},
		},
		{
			Path:        "/v1/appointments",
			Method:      http.MethodPost,
			Handler:     CreateAppointment(appointmentRepo, propertyRepo, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.BuyerOnly()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(syncService *scheduler.DashboardSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
