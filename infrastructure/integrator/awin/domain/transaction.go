package awindomain

// TimeFormat é o formato de data e hora com precisão de segundos exigido
// pela API da Awin nos parâmetros e nos campos de data das respostas.
const TimeFormat = "2006-01-02T15:04:05"

type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "pending"
	CommissionStatusApproved CommissionStatus = "approved"
	CommissionStatusDeclined CommissionStatus = "declined"
	CommissionStatusDeleted  CommissionStatus = "deleted"
)

// Money representa um valor monetário retornado pela API.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

type Transaction struct {
	ID               int64             `json:"id,omitempty"`
	URL              string            `json:"url,omitempty"`
	AdvertiserID     int               `json:"advertiserId,omitempty"`
	PublisherID      int               `json:"publisherId,omitempty"`
	SiteName         string            `json:"siteName,omitempty"`
	CommissionStatus CommissionStatus  `json:"commissionStatus,omitempty"`
	CommissionAmount Money             `json:"commissionAmount,omitempty"`
	SaleAmount       Money             `json:"saleAmount,omitempty"`
	ClickDate        string            `json:"clickDate,omitempty"`
	TransactionDate  string            `json:"transactionDate,omitempty"`
	ValidationDate   *string           `json:"validationDate,omitempty"`
	Type             string            `json:"type,omitempty"`
	DeclineReason    *string           `json:"declineReason,omitempty"`
	VoucherCode      string            `json:"voucherCode,omitempty"`
	OrderRef         string            `json:"orderRef,omitempty"`
	PaidToPublisher  bool              `json:"paidToPublisher,omitempty"`
	PaymentID        int               `json:"paymentId,omitempty"`
	TransactionParts []TransactionPart `json:"transactionParts,omitempty"`
}

type TransactionPart struct {
	CommissionGroupID   string  `json:"commissionGroupId,omitempty"`
	Amount              float64 `json:"amount,omitempty"`
	CommissionAmount    float64 `json:"commissionAmount,omitempty"`
	CommissionGroupCode string  `json:"commissionGroupCode,omitempty"`
	CommissionGroupName string  `json:"commissionGroupName,omitempty"`

	// CommissionGroup é preenchido apenas pelo enriquecimento opcional da
	// listagem de transações; permanece nulo quando o grupo não é resolvido.
	CommissionGroup *CommissionGroup `json:"commissionGroup,omitempty"`
}

// DistinctAdvertiserIDs retorna os anunciantes presentes nas transações, sem
// repetição e na ordem em que aparecem.
func DistinctAdvertiserIDs(transactions []Transaction) []int {
	seen := make(map[int]struct{})
	ids := make([]int, 0)

	for _, transaction := range transactions {
		if _, ok := seen[transaction.AdvertiserID]; ok {
			continue
		}
		seen[transaction.AdvertiserID] = struct{}{}
		ids = append(ids, transaction.AdvertiserID)
	}

	return ids
}

// CommissionGroupIDs retorna os identificadores de grupo de comissão das
// partes da transação, ignorando partes sem grupo.
func (t Transaction) CommissionGroupIDs() []string {
	ids := make([]string, 0, len(t.TransactionParts))

	for _, part := range t.TransactionParts {
		if part.CommissionGroupID == "" {
			continue
		}
		ids = append(ids, part.CommissionGroupID)
	}

	return ids
}
