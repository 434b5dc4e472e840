package awin

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/awinclient"
	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/affiliate-manager-api/internal/config"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
)

type AwinIntegrator interface {
	TransactionsByPeriod(filters *domain.TransactionFilters) ([]awindomain.Transaction, error)
	CommissionGroupsByAdvertiser(advertiserID int) ([]awindomain.CommissionGroup, error)
}

type AwinService struct {
	cfg    *config.Config
	Client awinclient.Client
}

func New(cfg *config.Config, client awinclient.Client) AwinIntegrator {
	return &AwinService{
		cfg:    cfg,
		Client: client,
	}
}

// TransactionsByPeriod busca as transações do período dos filtros,
// expandindo as datas para os limites do dia no fuso configurado.
func (s *AwinService) TransactionsByPeriod(filters *domain.TransactionFilters) ([]awindomain.Transaction, error) {
	startDate := startOfDay(*filters.StartDate)
	endDate := endOfDay(*filters.EndDate)

	transactions, err := s.Client.GetTransactions(startDate, endDate, s.cfg.Awin.Timezone)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"start_date": startDate.Format(awindomain.TimeFormat),
			"end_date":   endDate.Format(awindomain.TimeFormat),
			"error":      err.Error(),
		}).Error("affiliate: failed to get transactions from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"start_date":         startDate.Format(awindomain.TimeFormat),
		"end_date":           endDate.Format(awindomain.TimeFormat),
		"total_transactions": len(transactions),
	}).Debug("affiliate: successfully retrieved transactions")

	return transactions, nil
}

// CommissionGroupsByAdvertiser busca os grupos de comissão de um anunciante.
func (s *AwinService) CommissionGroupsByAdvertiser(advertiserID int) ([]awindomain.CommissionGroup, error) {
	groups, err := s.Client.GetCommissionGroups(advertiserID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"advertiser_id": advertiserID,
			"error":         err.Error(),
		}).Error("affiliate: failed to get commission groups from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"total_groups":  len(groups),
	}).Debug("affiliate: successfully retrieved commission groups")

	return groups, nil
}

// FactoryTransactionReport converte uma transação da rede na projeção
// armazenada pelo serviço.
func FactoryTransactionReport(transaction awindomain.Transaction) *domain.TransactionReport {
	report := &domain.TransactionReport{
		ID:                 transaction.ID,
		AdvertiserID:       transaction.AdvertiserID,
		PublisherID:        transaction.PublisherID,
		SiteName:           transaction.SiteName,
		CommissionStatus:   string(transaction.CommissionStatus),
		CommissionAmount:   transaction.CommissionAmount.Amount,
		SaleAmount:         transaction.SaleAmount.Amount,
		Currency:           transaction.SaleAmount.Currency,
		OrderRef:           transaction.OrderRef,
		PaidToPublisher:    transaction.PaidToPublisher,
		PartsCount:         len(transaction.TransactionParts),
		CommissionGroupIDs: transaction.CommissionGroupIDs(),
	}

	transactionDate, err := time.Parse(awindomain.TimeFormat, transaction.TransactionDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"transaction_id": transaction.ID,
			"date_value":     transaction.TransactionDate,
			"error":          err.Error(),
		}).Warn("affiliate: error converting transaction date")
	}
	report.TransactionDate = transactionDate

	if transaction.ClickDate != "" {
		clickDate, err := time.Parse(awindomain.TimeFormat, transaction.ClickDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"transaction_id": transaction.ID,
				"date_value":     transaction.ClickDate,
				"error":          err.Error(),
			}).Warn("affiliate: error converting click date")
		} else {
			report.ClickDate = &clickDate
		}
	}

	return report
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
