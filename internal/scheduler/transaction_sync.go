package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-manager-api/internal/config"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"github.com/vfg2006/affiliate-manager-api/internal/usecases/advertising"
)

// A API limita consultas de transações a 31 dias por chamada.
const maxSyncWindowDays = 31

// TransactionSyncConfig representa a configuração do agendador de transações
type TransactionSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// TransactionSyncService gerencia o agendamento e execução da sincronização de
// transações de afiliados com o banco de dados
type TransactionSyncService struct {
	scheduler           *gocron.Scheduler
	config              TransactionSyncConfig
	awinService         awin.AwinIntegrator
	advertiserService   advertising.AdvertiserService
	reportRepo          repository.TransactionReportRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSavedCount  int
}

// NewTransactionSyncService cria uma nova instância do serviço de sincronização de transações
func NewTransactionSyncService(
	awinService awin.AwinIntegrator,
	advertiserService advertising.AdvertiserService,
	reportRepo repository.TransactionReportRepository,
	appConfig *config.Config,
) *TransactionSyncService {
	// Criar a configuração com base na config global
	syncConfig := TransactionSyncConfig{
		CronSchedule:        appConfig.TransactionSync.CronSchedule,
		LookbackDays:        appConfig.TransactionSync.LookbackDays,
		RequestDelaySeconds: appConfig.TransactionSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.TransactionSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de transações carregada")

	return &TransactionSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		awinService:       awinService,
		advertiserService: advertiserService,
		reportRepo:        reportRepo,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *TransactionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de transações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de transações")

	// Agendar a sincronização de transações
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncTransactions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de transações: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de transações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncTransactions sincroniza as transações do período de lookback com o banco
func (s *TransactionSyncService) syncTransactions() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de transações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	// Período: do início do lookback até o fim de ontem. O dia corrente ainda
	// está incompleto e fica de fora da sincronização.
	now := time.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(-time.Second)
	startDate := now.AddDate(0, 0, -s.config.LookbackDays)
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())

	if !startDate.Before(endDate) {
		logrus.Info("Nenhum dia completo no período de sincronização de transações")
		return
	}

	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Período para sincronização de transações")

	// Processar o período em janelas respeitando o limite por chamada
	totalSaved := 0
	for chunkStart := startDate; chunkStart.Before(endDate); chunkStart = chunkStart.AddDate(0, 0, maxSyncWindowDays) {
		chunkEnd := chunkStart.AddDate(0, 0, maxSyncWindowDays).Add(-time.Second)
		if chunkEnd.After(endDate) {
			chunkEnd = endDate
		}

		saved, err := s.syncWindow(chunkStart, chunkEnd)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"start_date": chunkStart.Format(time.DateOnly),
				"end_date":   chunkEnd.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao sincronizar janela de transações")
			continue
		}

		totalSaved += saved

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"days":     s.config.LookbackDays,
		"saved":    totalSaved,
	}).Info("Sincronização de transações concluída")

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncSavedCount = totalSaved
}

// syncWindow busca as transações da janela na API, garante o cadastro dos
// anunciantes vistos e persiste os relatórios. Retorna a quantidade gravada.
func (s *TransactionSyncService) syncWindow(startDate, endDate time.Time) (int, error) {
	filters := &domain.TransactionFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	transactions, err := s.awinService.TransactionsByPeriod(filters)
	if err != nil {
		return 0, err
	}

	if len(transactions) == 0 {
		logrus.WithFields(logrus.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("Nenhuma transação encontrada na janela")
		return 0, nil
	}

	// Garantir o cadastro dos anunciantes presentes nas transações
	if _, err := s.advertiserService.EnsureRegistered(transactions); err != nil {
		logrus.WithError(err).Warn("Erro ao cadastrar anunciantes da janela sincronizada")
	}

	reports := make([]*domain.TransactionReport, 0, len(transactions))
	for _, transaction := range transactions {
		report := awin.FactoryTransactionReport(transaction)
		if report == nil {
			continue
		}
		reports = append(reports, report)
	}

	saved, err := s.reportRepo.SaveOrUpdateBatch(reports)
	if err != nil {
		return saved, err
	}

	logrus.WithFields(logrus.Fields{
		"start_date":   startDate.Format(time.DateOnly),
		"end_date":     endDate.Format(time.DateOnly),
		"transactions": len(transactions),
		"saved":        saved,
	}).Info("Janela de transações sincronizada com sucesso")

	return saved, nil
}

// TriggerManualSync inicia manualmente uma sincronização de transações
func (s *TransactionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de transações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de transações")
	go s.syncTransactions()
}

// GetStatus retorna o status atual do agendador
func (s *TransactionSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":            s.config.SyncEnabled,
		"sync_cron":               s.config.CronSchedule,
		"sync_lookback_days":      s.config.LookbackDays,
		"sync_request_delay_s":    s.config.RequestDelaySeconds,
		"retention_policy":        "dados mantidos permanentemente",
		"last_sync_started_at":    s.lastSyncStartedAt,
		"last_sync_completed_at":  s.lastSyncCompletedAt,
		"last_sync_saved_reports": s.lastSyncSavedCount,
	}
}
