package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/awinclient"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-manager-api/internal/api"
	"github.com/vfg2006/affiliate-manager-api/internal/config"
	"github.com/vfg2006/affiliate-manager-api/internal/scheduler"
	"github.com/vfg2006/affiliate-manager-api/internal/usecases/advertising"
	"github.com/vfg2006/affiliate-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/affiliate-manager-api/internal/usecases/reporting"
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

	userRepo := repository.NewUserRepository(pgConn)
	advertiserRepo := repository.NewAdvertiserRepository(pgConn)
	transactionReportRepo := repository.NewTransactionReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	awinClient := awinclient.NewClient(cfg)
	awinIntegrator := awin.New(cfg, awinClient)

	advertiserService := advertising.NewService(advertiserRepo, awinIntegrator)

	// Inicializa o serviço de relatórios com suporte a cache
	reportService := reporting.NewService(awinIntegrator)
	cachedReportService := reportService.(*reporting.Service).WithCache(transactionReportRepo)

	// Inicializa o agendador de sincronização de transações
	transactionSyncService := scheduler.NewTransactionSyncService(
		awinIntegrator,
		advertiserService,
		transactionReportRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := transactionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de transações")
	} else {
		logrus.Info("Agendador de sincronização de transações iniciado com sucesso")
	}

	// Mantém a instância acordada pingando a URL pública do serviço
	keepAliveService := scheduler.NewKeepAliveService(cfg)
	if err := keepAliveService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o keep-alive do serviço")
	}

	server, err := api.New(
		cfg,
		cachedReportService,
		advertiserService,
		authenticator,
		transactionSyncService,
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
