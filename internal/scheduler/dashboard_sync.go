package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/estate-dashboard-api/internal/config"
)

// Nomes das coleções atualizadas pelo serviço de sincronização
const (
	CollectionProperties   = "properties"
	CollectionUsers        = "users"
	CollectionFavourites   = "favourites"
	CollectionAppointments = "appointments"
)

// DashboardSyncService atualiza os snapshots do dashboard a partir dos
// repositórios, cada coleção na sua própria cadência de cron. As coleções
// chegam de forma independente: uma falha ou atraso em uma fonte não impede
// as demais de atualizarem, e o dashboard agrega o que já estiver disponível.
type DashboardSyncService struct {
	scheduler       *gocron.Scheduler
	store           *SnapshotStore
	propertyRepo    repository.PropertyRepository
	userRepo        repository.UserRepository
	favouriteRepo   repository.FavouriteRepository
	appointmentRepo repository.AppointmentRepository
	config          config.DashboardSync

	mu            sync.Mutex
	lastRefreshAt map[string]time.Time
	lastErrors    map[string]string
}

func NewDashboardSyncService(
	store *SnapshotStore,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	favouriteRepo repository.FavouriteRepository,
	appointmentRepo repository.AppointmentRepository,
	cfg *config.Config,
) *DashboardSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"properties_cron":   cfg.DashboardSync.PropertiesCron,
		"users_cron":        cfg.DashboardSync.UsersCron,
		"favourites_cron":   cfg.DashboardSync.FavouritesCron,
		"appointments_cron": cfg.DashboardSync.AppointmentsCron,
		"enabled":           cfg.DashboardSync.Enabled,
	}).Info("Configuração do agendador de snapshots do dashboard carregada")

	return &DashboardSyncService{
		scheduler:       scheduler,
		store:           store,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		favouriteRepo:   favouriteRepo,
		appointmentRepo: appointmentRepo,
		config:          cfg.DashboardSync,
		lastRefreshAt:   make(map[string]time.Time),
		lastErrors:      make(map[string]string),
	}
}

// Start agenda a atualização de cada coleção na sua cadência e dispara uma
// carga inicial em background. A carga inicial também é por coleção: o
// dashboard fica utilizável conforme cada fonte resolve.
func (s *DashboardSyncService) Start(ctx context.Context) error {
	// Carga inicial independente por coleção
	go s.RefreshAll()

	if !s.config.Enabled {
		logrus.Info("Cron de atualização de snapshots do dashboard desabilitada por configuração")
		return nil
	}

	jobs := []struct {
		collection string
		cron       string
		refresh    func() error
	}{
		{CollectionProperties, s.config.PropertiesCron, s.RefreshProperties},
		{CollectionUsers, s.config.UsersCron, s.RefreshUsers},
		{CollectionFavourites, s.config.FavouritesCron, s.RefreshFavourites},
		{CollectionAppointments, s.config.AppointmentsCron, s.RefreshAppointments},
	}

	for _, job := range jobs {
		job := job

		_, err := s.scheduler.Cron(job.cron).Do(func() {
			if err := job.refresh(); err != nil {
				logrus.WithError(err).WithField("collection", job.collection).
					Error("Erro na atualização de snapshot do dashboard")
			}
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar atualização da coleção %s: %w", job.collection, err)
		}
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshAll atualiza todas as coleções. Cada uma falha ou resolve por
// conta própria; a primeira falha é retornada apenas para sinalização.
func (s *DashboardSyncService) RefreshAll() error {
	var firstErr error

	for _, refresh := range []func() error{
		s.RefreshProperties,
		s.RefreshUsers,
		s.RefreshFavourites,
		s.RefreshAppointments,
	} {
		if err := refresh(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

func (s *DashboardSyncService) RefreshProperties() error {
	properties, err := s.propertyRepo.ListProperties()
	if err != nil {
		s.recordRefresh(CollectionProperties, err)
		return err
	}

	s.store.SetProperties(properties)
	s.recordRefresh(CollectionProperties, nil)

	logrus.WithField("total", len(properties)).Debug("Snapshot de imóveis atualizado")
	return nil
}

func (s *DashboardSyncService) RefreshUsers() error {
	users, err := s.userRepo.ListUsers()
	if err != nil {
		s.recordRefresh(CollectionUsers, err)
		return err
	}

	s.store.SetUsers(users)
	s.recordRefresh(CollectionUsers, nil)

	logrus.WithField("total", len(users)).Debug("Snapshot de usuários atualizado")
	return nil
}

func (s *DashboardSyncService) RefreshFavourites() error {
	favourites, err := s.favouriteRepo.ListFavourites()
	if err != nil {
		s.recordRefresh(CollectionFavourites, err)
		return err
	}

	s.store.SetFavourites(favourites)
	s.recordRefresh(CollectionFavourites, nil)

	logrus.WithField("total", len(favourites)).Debug("Snapshot de favoritos atualizado")
	return nil
}

func (s *DashboardSyncService) RefreshAppointments() error {
	appointments, err := s.appointmentRepo.ListAppointments()
	if err != nil {
		s.recordRefresh(CollectionAppointments, err)
		return err
	}

	s.store.SetAppointments(appointments)
	s.recordRefresh(CollectionAppointments, nil)

	logrus.WithField("total", len(appointments)).Debug("Snapshot de agendamentos atualizado")
	return nil
}

// Refresh atualiza uma coleção específica pelo nome (usado pelo disparo
// manual via API)
func (s *DashboardSyncService) Refresh(collection string) error {
	switch collection {
	case CollectionProperties:
		return s.RefreshProperties()
	case CollectionUsers:
		return s.RefreshUsers()
	case CollectionFavourites:
		return s.RefreshFavourites()
	case CollectionAppointments:
		return s.RefreshAppointments()
	default:
		return fmt.Errorf("coleção desconhecida: %s", collection)
	}
}

// CollectionStatus descreve o estado da última atualização de uma coleção
type CollectionStatus struct {
	LastRefreshAt *time.Time `json:"last_refresh_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	Version       uint64     `json:"version"`
}

// Status retorna o estado de atualização de cada coleção
func (s *DashboardSyncService) Status() map[string]CollectionStatus {
	versions := s.store.Versions()

	s.mu.Lock()
	defer s.mu.Unlock()

	status := make(map[string]CollectionStatus, 4)
	for collection, version := range map[string]uint64{
		CollectionProperties:   versions.AllProperties,
		CollectionUsers:        versions.AllUsers,
		CollectionFavourites:   versions.Favourites,
		CollectionAppointments: versions.BuyerAppointments,
	} {
		entry := CollectionStatus{Version: version}

		if at, ok := s.lastRefreshAt[collection]; ok {
			refreshedAt := at
			entry.LastRefreshAt = &refreshedAt
		}

		entry.LastError = s.lastErrors[collection]

		status[collection] = entry
	}

	return status
}

func (s *DashboardSyncService) recordRefresh(collection string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRefreshAt[collection] = time.Now()

	if err != nil {
		s.lastErrors[collection] = err.Error()
		return
	}

	delete(s.lastErrors, collection)
}
