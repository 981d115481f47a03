package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/estate-dashboard-api/internal/api"
	"github.com/vfg2006/estate-dashboard-api/internal/config"
	"github.com/vfg2006/estate-dashboard-api/internal/scheduler"
	"github.com/vfg2006/estate-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/estate-dashboard-api/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	propertyRepo := repository.NewPropertyRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	favouriteRepo := repository.NewFavouriteRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Snapshot em memória das coleções consumidas pelo dashboard
	store := scheduler.NewSnapshotStore()

	syncService := scheduler.NewDashboardSyncService(
		store,
		propertyRepo,
		userRepo,
		favouriteRepo,
		appointmentRepo,
		cfg,
	)

	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do dashboard")
	} else {
		logrus.Info("Agendador de snapshots do dashboard iniciado com sucesso")
	}

	// Agregador memoizado que deriva métricas, tabela e atividade por role
	aggregator := dashboarding.NewService()

	server, err := api.New(
		cfg,
		aggregator,
		authenticator,
		store,
		syncService,
		api.Repositories{
			Property:    propertyRepo,
			Favourite:   favouriteRepo,
			Appointment: appointmentRepo,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
