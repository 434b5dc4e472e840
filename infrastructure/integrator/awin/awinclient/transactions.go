package awinclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
)

// GetTransactions busca as transações do publisher configurado no período
// informado. As datas são enviadas com precisão de segundos no formato da
// API; timezone vazio usa o fuso padrão da configuração. Corpo vazio
// resulta em lista vazia, nunca em erro.
func (c *AwinClient) GetTransactions(startDate, endDate time.Time, timezone string) ([]awindomain.Transaction, error) {
	if timezone == "" {
		timezone = c.config.Timezone
	}

	resource := fmt.Sprintf("/publishers/%d/transactions/", c.config.PublisherID)

	query := url.Values{}
	query.Set("startDate", startDate.Format(awindomain.TimeFormat))
	query.Set("endDate", endDate.Format(awindomain.TimeFormat))
	query.Set("timezone", timezone)

	body, err := c.doRequest(resource, query)
	if err != nil {
		return nil, err
	}

	transactions := make([]awindomain.Transaction, 0)
	if len(body) == 0 {
		return transactions, nil
	}

	if err := json.Unmarshal(body, &transactions); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if c.config.VerboseCommissionGroups {
		c.enrichCommissionGroups(transactions)
	}

	return transactions, nil
}

// enrichCommissionGroups anexa a cada parte de transação o grupo de comissão
// resolvido pelo cache. Partes cujo grupo não pôde ser resolvido permanecem
// sem referência; a listagem nunca falha por causa do enriquecimento.
func (c *AwinClient) enrichCommissionGroups(transactions []awindomain.Transaction) {
	for i := range transactions {
		transaction := &transactions[i]

		for j := range transaction.TransactionParts {
			part := &transaction.TransactionParts[j]
			part.CommissionGroup = c.resolveCommissionGroup(part.CommissionGroupID, transaction.AdvertiserID)
		}
	}
}
