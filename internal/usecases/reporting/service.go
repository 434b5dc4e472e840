package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
)

// Reporter define a interface para consultar relatórios de transações de afiliados
type Reporter interface {
	// ListTransactionReports lista as transações do período, combinando o banco
	// de dados com a API da rede para as datas ainda não sincronizadas
	ListTransactionReports(filters *domain.TransactionFilters) ([]*domain.TransactionReport, error)

	// Summarize agrega as comissões do período por status
	Summarize(filters *domain.TransactionFilters) (*domain.CommissionSummary, error)
}

type Service struct {
	awinService      awin.AwinIntegrator
	reportRepository repository.TransactionReportRepository
	useCache         bool
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(awinService awin.AwinIntegrator) Reporter {
	return &Service{
		awinService:      awinService,
		reportRepository: nil,   // Inicialmente null
		useCache:         false, // Inicialmente não usa cache
	}
}

// WithCache habilita o uso do banco de dados como cache de transações
func (s *Service) WithCache(reportRepo repository.TransactionReportRepository) *Service {
	s.reportRepository = reportRepo
	s.useCache = s.reportRepository != nil
	return s
}

func (s *Service) ListTransactionReports(filters *domain.TransactionFilters) ([]*domain.TransactionReport, error) {
	// Verificar se os filtros têm datas válidas
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	// Validar se as datas estão em ordem
	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	if s.useCache {
		return s.listWithCache(filters)
	}

	return s.listWithoutCache(filters)
}

// listWithoutCache consulta as transações do período diretamente na API da rede
func (s *Service) listWithoutCache(filters *domain.TransactionFilters) ([]*domain.TransactionReport, error) {
	transactions, err := s.awinService.TransactionsByPeriod(filters)
	if err != nil {
		return nil, err
	}

	reports := make([]*domain.TransactionReport, 0, len(transactions))
	for _, transaction := range transactions {
		report := awin.FactoryTransactionReport(transaction)
		if report == nil {
			continue
		}

		if !matchesFilters(report, filters) {
			continue
		}

		reports = append(reports, report)
	}

	sortReportsByDate(reports)

	return reports, nil
}

// listWithCache busca as transações do banco e preenche as datas faltantes via API
func (s *Service) listWithCache(filters *domain.TransactionFilters) ([]*domain.TransactionReport, error) {
	// Gerar lista de todas as datas do período solicitado para controle
	allDates := generateDateRange(filters.StartDate, filters.EndDate)
	if len(allDates) == 0 {
		return nil, fmt.Errorf("período de datas inválido")
	}

	// Mapa para armazenar as datas que já temos no banco
	existingDates := make(map[string]bool)

	syncedDates, err := s.reportRepository.ListSyncedDates(*filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Erro ao buscar datas sincronizadas do banco de dados para o período")
	} else {
		for _, date := range syncedDates {
			existingDates[date.Format(time.DateOnly)] = true
		}
	}

	// Determinar quais datas estão faltando para buscar da API
	var missingDates []time.Time
	for _, date := range allDates {
		if !existingDates[date.Format(time.DateOnly)] {
			missingDates = append(missingDates, date)
		}
	}

	reports, err := s.reportRepository.ListByPeriod(filters)
	if err != nil {
		return nil, err
	}

	if len(missingDates) > 0 {
		fetched := s.fetchMissingDates(missingDates)

		for _, report := range fetched {
			if !matchesFilters(report, filters) {
				continue
			}
			reports = append(reports, report)
		}
	}

	sortReportsByDate(reports)

	return reports, nil
}

// fetchMissingDates busca na API as transações do intervalo de datas faltantes
// em uma única chamada e persiste os dias já encerrados. Erros na chamada são
// registrados e o resultado parcial do banco continua válido.
func (s *Service) fetchMissingDates(missingDates []time.Time) []*domain.TransactionReport {
	firstMissing := missingDates[0]
	lastMissing := missingDates[len(missingDates)-1]

	logrus.WithFields(logrus.Fields{
		"missing_dates": len(missingDates),
		"first_missing": firstMissing.Format(time.DateOnly),
		"last_missing":  lastMissing.Format(time.DateOnly),
	}).Info("Buscando transações da API para datas faltantes")

	apiFilters := &domain.TransactionFilters{
		StartDate: &firstMissing,
		EndDate:   &lastMissing,
	}

	transactions, err := s.awinService.TransactionsByPeriod(apiFilters)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"first_missing": firstMissing.Format(time.DateOnly),
			"last_missing":  lastMissing.Format(time.DateOnly),
		}).Warn("Erro ao obter transações da API para as datas faltantes")
		return nil
	}

	// O intervalo buscado pode conter dias que já estavam no banco. Esses dias
	// são descartados para não duplicar transações na resposta.
	missingSet := make(map[string]bool, len(missingDates))
	for _, date := range missingDates {
		missingSet[date.Format(time.DateOnly)] = true
	}

	fetched := make([]*domain.TransactionReport, 0, len(transactions))
	for _, transaction := range transactions {
		report := awin.FactoryTransactionReport(transaction)
		if report == nil {
			continue
		}

		if !missingSet[report.TransactionDate.Format(time.DateOnly)] {
			continue
		}

		fetched = append(fetched, report)
	}

	// O dia corrente ainda pode receber transações, então não é persistido. As
	// transações dele entram apenas na resposta em memória.
	today := time.Now().Format(time.DateOnly)
	toPersist := make([]*domain.TransactionReport, 0, len(fetched))
	for _, report := range fetched {
		if report.TransactionDate.Format(time.DateOnly) == today {
			continue
		}
		toPersist = append(toPersist, report)
	}

	if len(toPersist) > 0 {
		if _, err := s.reportRepository.SaveOrUpdateBatch(toPersist); err != nil {
			logrus.WithError(err).Warn("Erro ao salvar transaction reports no banco de dados")
		}
	}

	return fetched
}

func (s *Service) Summarize(filters *domain.TransactionFilters) (*domain.CommissionSummary, error) {
	// Verificar se os filtros têm datas válidas
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	// Validar se as datas estão em ordem
	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	if s.useCache {
		// Garante que as datas faltantes do período sejam sincronizadas antes
		// de agregar no banco. O dia corrente não entra no resumo.
		if _, err := s.listWithCache(filters); err != nil {
			return nil, err
		}

		entries, err := s.reportRepository.SummarizeByPeriod(filters)
		if err != nil {
			return nil, err
		}

		return domain.BuildCommissionSummary(*filters.StartDate, *filters.EndDate, entries), nil
	}

	reports, err := s.listWithoutCache(filters)
	if err != nil {
		return nil, err
	}

	return domain.BuildCommissionSummary(*filters.StartDate, *filters.EndDate, aggregateByStatus(reports)), nil
}

// aggregateByStatus agrega as transações em memória por status de comissão
func aggregateByStatus(reports []*domain.TransactionReport) []*domain.CommissionSummaryEntry {
	byStatus := make(map[string]*domain.CommissionSummaryEntry)

	for _, report := range reports {
		entry, exists := byStatus[report.CommissionStatus]
		if !exists {
			entry = &domain.CommissionSummaryEntry{CommissionStatus: report.CommissionStatus}
			byStatus[report.CommissionStatus] = entry
		}

		entry.Transactions++
		entry.CommissionTotal += report.CommissionAmount
		entry.SaleTotal += report.SaleAmount
	}

	entries := make([]*domain.CommissionSummaryEntry, 0, len(byStatus))
	for _, entry := range byStatus {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CommissionStatus < entries[j].CommissionStatus
	})

	return entries
}

func matchesFilters(report *domain.TransactionReport, filters *domain.TransactionFilters) bool {
	if filters.AdvertiserID != nil && report.AdvertiserID != *filters.AdvertiserID {
		return false
	}

	if filters.Status != nil && report.CommissionStatus != *filters.Status {
		return false
	}

	return true
}

func sortReportsByDate(reports []*domain.TransactionReport) {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].TransactionDate.Before(reports[j].TransactionDate)
	})
}

// generateDateRange gera a lista de dias entre as duas datas, inclusivas
func generateDateRange(startDate, endDate *time.Time) []time.Time {
	if startDate == nil || endDate == nil || startDate.After(*endDate) {
		return []time.Time{}
	}

	var dates []time.Time
	currentDate := *startDate

	// Normalizando as datas para meia-noite
	currentDate = time.Date(currentDate.Year(), currentDate.Month(), currentDate.Day(), 0, 0, 0, 0, currentDate.Location())
	endDateTime := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	for !currentDate.After(endDateTime) {
		dates = append(dates, currentDate)
		currentDate = currentDate.AddDate(0, 0, 1) // Adiciona um dia
	}

	return dates
}
