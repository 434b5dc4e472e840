package domain

import (
	"time"

	"github.com/vfg2006/affiliate-manager-api/pkg/utils"
)

type TransactionFilters struct {
	StartDate    *time.Time
	EndDate      *time.Time
	AdvertiserID *int
	Status       *string
}

// TransactionReport representa a projeção de uma transação de afiliado
// armazenada no banco. O ID é o identificador externo da transação na rede.
type TransactionReport struct {
	ID                 int64      `json:"id"`
	AdvertiserID       int        `json:"advertiser_id"`
	PublisherID        int        `json:"publisher_id"`
	SiteName           string     `json:"site_name"`
	CommissionStatus   string     `json:"commission_status"`
	CommissionAmount   float64    `json:"commission_amount"`
	SaleAmount         float64    `json:"sale_amount"`
	Currency           string     `json:"currency"`
	OrderRef           string     `json:"order_ref"`
	ClickDate          *time.Time `json:"click_date,omitempty"`
	TransactionDate    time.Time  `json:"transaction_date"`
	PaidToPublisher    bool       `json:"paid_to_publisher"`
	PartsCount         int        `json:"parts_count"`
	CommissionGroupIDs []string   `json:"commission_group_ids,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CommissionSummaryEntry agrega as transações de um status de comissão.
type CommissionSummaryEntry struct {
	CommissionStatus string  `json:"commission_status"`
	Transactions     int     `json:"transactions"`
	CommissionTotal  float64 `json:"commission_total"`
	SaleTotal        float64 `json:"sale_total"`
}

type CommissionSummary struct {
	StartDate       time.Time                 `json:"start_date"`
	EndDate         time.Time                 `json:"end_date"`
	ByStatus        []*CommissionSummaryEntry `json:"by_status"`
	Transactions    int                       `json:"transactions"`
	CommissionTotal float64                   `json:"commission_total"`
	SaleTotal       float64                   `json:"sale_total"`
}

// BuildCommissionSummary monta o resumo do período a partir das entradas por
// status, calculando os totais gerais.
func BuildCommissionSummary(startDate, endDate time.Time, entries []*CommissionSummaryEntry) *CommissionSummary {
	summary := &CommissionSummary{
		StartDate: startDate,
		EndDate:   endDate,
		ByStatus:  entries,
	}

	for _, entry := range entries {
		summary.Transactions += entry.Transactions
		summary.CommissionTotal += entry.CommissionTotal
		summary.SaleTotal += entry.SaleTotal
	}

	summary.CommissionTotal = utils.RoundWithTwoDecimalPlace(summary.CommissionTotal)
	summary.SaleTotal = utils.RoundWithTwoDecimalPlace(summary.SaleTotal)

	return summary
}
