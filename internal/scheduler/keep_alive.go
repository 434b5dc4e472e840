package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-manager-api/internal/config"
	"github.com/vfg2006/affiliate-manager-api/pkg/utils"
)

// KeepAliveService pinga a URL pública do serviço em intervalos regulares para
// evitar que a instância seja suspensa por inatividade no plano gratuito.
type KeepAliveService struct {
	scheduler       *gocron.Scheduler
	url             string
	intervalMinutes int
	enabled         bool
}

// NewKeepAliveService cria uma nova instância do serviço de keep-alive
func NewKeepAliveService(appConfig *config.Config) *KeepAliveService {
	return &KeepAliveService{
		scheduler:       gocron.NewScheduler(time.Local),
		url:             appConfig.KeepAlive.URL,
		intervalMinutes: appConfig.KeepAlive.IntervalMinutes,
		enabled:         appConfig.KeepAlive.Enabled,
	}
}

// Start inicia o agendador de keep-alive
func (s *KeepAliveService) Start(ctx context.Context) error {
	if !s.enabled || s.url == "" {
		logrus.Info("Keep-alive desabilitado por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"url":              s.url,
		"interval_minutes": s.intervalMinutes,
	}).Info("Iniciando keep-alive do serviço")

	_, err := s.scheduler.Every(s.intervalMinutes).Minutes().Do(func() {
		s.ping()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar keep-alive: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando keep-alive do serviço")
		s.scheduler.Stop()
	}()

	return nil
}

// ping faz a requisição de keep-alive na URL configurada
func (s *KeepAliveService) ping() {
	if _, err := utils.MakeRequest(s.url); err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   s.url,
			"error": err.Error(),
		}).Warn("Keep-alive falhou")
		return
	}

	logrus.WithField("url", s.url).Debug("Keep-alive executado com sucesso")
}
