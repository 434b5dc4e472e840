package awinclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
)

// GetCommissionGroups busca todos os grupos de comissão de um anunciante no
// publisher configurado. Cada grupo retornado é anotado com o anunciante
// informado no envelope da resposta. Corpo vazio resulta em lista vazia.
func (c *AwinClient) GetCommissionGroups(advertiserID int) ([]awindomain.CommissionGroup, error) {
	resource := fmt.Sprintf("/publishers/%d/commissiongroups/", c.config.PublisherID)

	query := url.Values{}
	query.Set("advertiserId", strconv.Itoa(advertiserID))

	body, err := c.doRequest(resource, query)
	if err != nil {
		return nil, err
	}

	groups := make([]awindomain.CommissionGroup, 0)
	if len(body) == 0 {
		return groups, nil
	}

	var response awindomain.ResponseCommissionGroups
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	for _, group := range response.CommissionGroups {
		group.AdvertiserID = response.Advertiser
		groups = append(groups, group)
	}

	return groups, nil
}

// resolveCommissionGroup resolve um grupo de comissão pelo cache da
// instância. Identificador vazio resolve para nil sem consultar a API. Na
// primeira falta de um identificador, todos os grupos do anunciante são
// buscados e inseridos de uma vez, cada um sob a própria chave, e a consulta
// é refeita no cache. Entradas nunca expiram nem são sobrescritas. Qualquer
// falha na busca é absorvida e o grupo fica sem resolução: o enriquecimento
// é melhor esforço e não pode interromper a listagem de transações.
func (c *AwinClient) resolveCommissionGroup(groupID string, advertiserID int) *awindomain.CommissionGroup {
	if groupID == "" {
		return nil
	}

	if cached, found := c.groups.Get(groupID); found {
		group, _ := cached.(*awindomain.CommissionGroup)
		return group
	}

	fetched, err := c.GetCommissionGroups(advertiserID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"advertiser_id": advertiserID,
			"error":         err.Error(),
		}).Debug("awin: failed to fetch commission groups for enrichment")
		return nil
	}

	for i := range fetched {
		group := fetched[i]
		// Add não sobrescreve entradas já presentes.
		_ = c.groups.Add(group.GroupID, &group, cache.NoExpiration)
	}

	if cached, found := c.groups.Get(groupID); found {
		group, _ := cached.(*awindomain.CommissionGroup)
		return group
	}

	return nil
}
