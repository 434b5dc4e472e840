package awinclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/affiliate-manager-api/internal/config"
)

func newTestConfig(endpoint string, verbose bool) *config.Config {
	return &config.Config{
		Awin: config.Awin{
			Endpoint:                endpoint,
			APIToken:                "token-teste",
			PublisherID:             7,
			RequestTimeoutSeconds:   2,
			CallsPerMinute:          0,
			VerboseCommissionGroups: verbose,
			Timezone:                "Europe/Paris",
		},
	}
}

const transactionsBody = `[
	{
		"id": 259630312,
		"url": "http://www.publisher.com",
		"advertiserId": 15,
		"publisherId": 7,
		"siteName": "Publisher",
		"commissionStatus": "pending",
		"commissionAmount": {"amount": 5.59, "currency": "EUR"},
		"saleAmount": {"amount": 55.96, "currency": "EUR"},
		"clickDate": "2023-01-10T10:00:00",
		"transactionDate": "2023-01-11T13:10:00",
		"orderRef": "ORD-100",
		"paidToPublisher": false,
		"transactionParts": [
			{"commissionGroupId": "42", "amount": 55.96, "commissionAmount": 5.59}
		]
	}
]`

const commissionGroupsBody = `{
	"advertiser": 15,
	"commissionGroups": [
		{"groupId": "42", "groupCode": "DEFAULT", "groupName": "Default Commission", "type": "percentage", "percentage": 10}
	]
}`

func TestGetTransactions(t *testing.T) {
	startDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name          string
		timezone      string
		handler       http.HandlerFunc
		expectedTotal int
		expectedError string
	}{
		{
			name:     "Deve montar a requisição com autenticação e parâmetros do período",
			timezone: "Europe/Paris",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/publishers/7/transactions/", r.URL.Path)
				assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, "2023-01-01T00:00:00", r.URL.Query().Get("startDate"))
				assert.Equal(t, "2023-01-31T23:59:59", r.URL.Query().Get("endDate"))
				assert.Equal(t, "Europe/Paris", r.URL.Query().Get("timezone"))

				w.Write([]byte(transactionsBody))
			},
			expectedTotal: 1,
		},
		{
			name:     "Timezone vazio usa o fuso da configuração",
			timezone: "",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Europe/Paris", r.URL.Query().Get("timezone"))
				w.Write([]byte(`[]`))
			},
			expectedTotal: 0,
		},
		{
			name:     "Corpo vazio resulta em lista vazia",
			timezone: "Europe/Paris",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			expectedTotal: 0,
		},
		{
			name:     "Erro com description no corpo usa a mensagem da API",
			timezone: "Europe/Paris",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error": "invalid", "description": "The date range exceeds the maximum of 31 days"}`))
			},
			expectedError: "The date range exceeds the maximum of 31 days",
		},
		{
			name:     "Erro sem description resulta em mensagem genérica com o status",
			timezone: "Europe/Paris",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedError: "requisição falhou com status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(newTestConfig(server.URL, false))

			transactions, err := client.GetTransactions(startDate, endDate, tt.timezone)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Len(t, transactions, tt.expectedTotal)

			if tt.expectedTotal > 0 {
				transaction := transactions[0]
				assert.Equal(t, int64(259630312), transaction.ID)
				assert.Equal(t, 15, transaction.AdvertiserID)
				assert.Equal(t, awindomain.CommissionStatusPending, transaction.CommissionStatus)
				assert.Equal(t, 5.59, transaction.CommissionAmount.Amount)
				assert.Equal(t, 55.96, transaction.SaleAmount.Amount)
				assert.Equal(t, "EUR", transaction.SaleAmount.Currency)
				assert.Equal(t, "2023-01-11T13:10:00", transaction.TransactionDate)

				// Sem o modo verboso as partes não são enriquecidas
				require.Len(t, transaction.TransactionParts, 1)
				assert.Nil(t, transaction.TransactionParts[0].CommissionGroup)
			}
		})
	}
}

func TestGetTransactions_EnriquecimentoVerboso(t *testing.T) {
	startDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC)

	t.Run("Deve resolver o grupo de comissão de cada parte pelo cache", func(t *testing.T) {
		groupRequests := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/publishers/7/transactions/":
				w.Write([]byte(transactionsBody))
			case "/publishers/7/commissiongroups/":
				groupRequests++
				assert.Equal(t, "15", r.URL.Query().Get("advertiserId"))
				w.Write([]byte(commissionGroupsBody))
			default:
				t.Errorf("rota inesperada: %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, true))

		transactions, err := client.GetTransactions(startDate, endDate, "Europe/Paris")
		require.NoError(t, err)
		require.Len(t, transactions, 1)

		part := transactions[0].TransactionParts[0]
		require.NotNil(t, part.CommissionGroup)
		assert.Equal(t, "42", part.CommissionGroup.GroupID)
		assert.Equal(t, "Default Commission", part.CommissionGroup.GroupName)
		assert.Equal(t, 15, part.CommissionGroup.AdvertiserID)
		assert.Equal(t, 1, groupRequests)

		// Segunda listagem resolve pelo cache da instância, sem nova busca
		_, err = client.GetTransactions(startDate, endDate, "Europe/Paris")
		require.NoError(t, err)
		assert.Equal(t, 1, groupRequests)
	})

	t.Run("Uma única falta no cache popula todos os grupos do anunciante", func(t *testing.T) {
		groupRequests := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/publishers/7/transactions/":
				w.Write([]byte(`[
					{
						"id": 259630314,
						"advertiserId": 15,
						"publisherId": 7,
						"commissionStatus": "pending",
						"transactionDate": "2023-01-13T08:30:00",
						"transactionParts": [
							{"commissionGroupId": "42", "amount": 30.0, "commissionAmount": 3.0},
							{"commissionGroupId": "43", "amount": 25.96, "commissionAmount": 2.59}
						]
					}
				]`))
			case "/publishers/7/commissiongroups/":
				groupRequests++
				w.Write([]byte(`{
					"advertiser": 15,
					"commissionGroups": [
						{"groupId": "42", "groupCode": "DEFAULT", "groupName": "Default Commission"},
						{"groupId": "43", "groupCode": "SALE", "groupName": "Sale Items"}
					]
				}`))
			}
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, true))

		transactions, err := client.GetTransactions(startDate, endDate, "Europe/Paris")
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		require.Len(t, transactions[0].TransactionParts, 2)

		// A falta do grupo 42 já carrega o 43, então a segunda parte não gera nova busca
		assert.Equal(t, 1, groupRequests)

		first := transactions[0].TransactionParts[0]
		require.NotNil(t, first.CommissionGroup)
		assert.Equal(t, "42", first.CommissionGroup.GroupID)
		assert.Equal(t, "Default Commission", first.CommissionGroup.GroupName)

		second := transactions[0].TransactionParts[1]
		require.NotNil(t, second.CommissionGroup)
		assert.Equal(t, "43", second.CommissionGroup.GroupID)
		assert.Equal(t, "Sale Items", second.CommissionGroup.GroupName)
	})

	t.Run("Falha na busca de grupos não interrompe a listagem", func(t *testing.T) {
		groupRequests := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/publishers/7/transactions/":
				w.Write([]byte(transactionsBody))
			case "/publishers/7/commissiongroups/":
				groupRequests++
				w.WriteHeader(http.StatusInternalServerError)
			}
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, true))

		transactions, err := client.GetTransactions(startDate, endDate, "Europe/Paris")
		require.NoError(t, err)
		require.Len(t, transactions, 1)

		assert.Nil(t, transactions[0].TransactionParts[0].CommissionGroup)
		assert.Equal(t, 1, groupRequests)
	})

	t.Run("Parte sem identificador de grupo não consulta a API", func(t *testing.T) {
		groupRequests := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/publishers/7/transactions/":
				w.Write([]byte(`[
					{
						"id": 259630313,
						"advertiserId": 15,
						"publisherId": 7,
						"commissionStatus": "approved",
						"transactionDate": "2023-01-12T09:00:00",
						"transactionParts": [
							{"amount": 20.0, "commissionAmount": 2.0}
						]
					}
				]`))
			case "/publishers/7/commissiongroups/":
				groupRequests++
				w.Write([]byte(commissionGroupsBody))
			}
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, true))

		transactions, err := client.GetTransactions(startDate, endDate, "Europe/Paris")
		require.NoError(t, err)
		require.Len(t, transactions, 1)

		assert.Nil(t, transactions[0].TransactionParts[0].CommissionGroup)
		assert.Equal(t, 0, groupRequests)
	})

	t.Run("Grupo ausente na resposta do anunciante fica sem resolução", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/publishers/7/transactions/":
				w.Write([]byte(transactionsBody))
			case "/publishers/7/commissiongroups/":
				// Resposta sem o grupo 42
				w.Write([]byte(`{"advertiser": 15, "commissionGroups": [{"groupId": "99", "groupName": "Other"}]}`))
			}
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, true))

		transactions, err := client.GetTransactions(startDate, endDate, "Europe/Paris")
		require.NoError(t, err)
		require.Len(t, transactions, 1)

		assert.Nil(t, transactions[0].TransactionParts[0].CommissionGroup)
	})
}

func TestGetCommissionGroups(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedTotal int
		expectedError string
	}{
		{
			name: "Deve anotar cada grupo com o anunciante do envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/publishers/7/commissiongroups/", r.URL.Path)
				assert.Equal(t, "15", r.URL.Query().Get("advertiserId"))
				assert.Equal(t, "Bearer token-teste", r.Header.Get("Authorization"))

				w.Write([]byte(`{
					"advertiser": 15,
					"commissionGroups": [
						{"groupId": "42", "groupCode": "DEFAULT", "groupName": "Default Commission"},
						{"groupId": "43", "groupCode": "SALE", "groupName": "Sale Items"}
					]
				}`))
			},
			expectedTotal: 2,
		},
		{
			name: "Corpo vazio resulta em lista vazia",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			expectedTotal: 0,
		},
		{
			name: "Erro da API com description é propagado",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error": "forbidden", "description": "You are not authorised to access this advertiser"}`))
			},
			expectedError: "You are not authorised to access this advertiser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(newTestConfig(server.URL, false))

			groups, err := client.GetCommissionGroups(15)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Len(t, groups, tt.expectedTotal)

			for _, group := range groups {
				assert.Equal(t, 15, group.AdvertiserID)
			}
		})
	}
}
