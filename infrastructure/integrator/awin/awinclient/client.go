package awinclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/affiliate-manager-api/internal/config"
)

const defaultRequestTimeout = 10 * time.Second

type Client interface {
	GetTransactions(startDate, endDate time.Time, timezone string) ([]awindomain.Transaction, error)
	GetCommissionGroups(advertiserID int) ([]awindomain.CommissionGroup, error)
}

// AwinClient acessa a API de publishers da Awin. O contador de chamadas e o
// cache de grupos de comissão pertencem à instância: um cliente novo começa
// com ambos zerados.
type AwinClient struct {
	httpClient *http.Client
	config     *config.Awin
	throttle   *rateThrottle
	groups     *cache.Cache
}

// NewClient cria uma nova instância do cliente da API da Awin.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Awin.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &AwinClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:   &cfg.Awin,
		throttle: newRateThrottle(cfg.Awin.CallsPerMinute),
		groups:   cache.New(cache.NoExpiration, 0),
	}
}

// doRequest executa uma requisição GET autenticada contra a API da Awin,
// passando antes pelo limitador de chamadas, e retorna o corpo bruto da
// resposta.
func (c *AwinClient) doRequest(resource string, query url.Values) ([]byte, error) {
	c.throttle.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
	defer cancel()

	// Construir a URL da requisição.
	endpoint := c.config.Endpoint + resource
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse verifica o status da resposta. Em caso de erro a mensagem
// usa o campo description do corpo quando presente; sem descrição o erro é
// genérico, apenas com o status.
func (c *AwinClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp awindomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.HasDescription() {
			return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, errResp.Description)
		}

		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	return body, nil
}
