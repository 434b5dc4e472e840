package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
	awinmocks "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/mocks"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func makeTransaction(id int64, advertiserID int, status awindomain.CommissionStatus, date string, commission, sale float64) awindomain.Transaction {
	return awindomain.Transaction{
		ID:               id,
		AdvertiserID:     advertiserID,
		PublisherID:      7,
		CommissionStatus: status,
		CommissionAmount: awindomain.Money{Amount: commission, Currency: "EUR"},
		SaleAmount:       awindomain.Money{Amount: sale, Currency: "EUR"},
		TransactionDate:  date,
	}
}

func TestListTransactionReports_Validacao(t *testing.T) {
	service := NewService(nil)

	startDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters *domain.TransactionFilters
	}{
		{
			name:    "Filtros nulos devem retornar erro",
			filters: nil,
		},
		{
			name:    "Data de início ausente deve retornar erro",
			filters: &domain.TransactionFilters{EndDate: &endDate},
		},
		{
			name:    "Data de fim ausente deve retornar erro",
			filters: &domain.TransactionFilters{StartDate: &startDate},
		},
		{
			name:    "Data de início posterior à de fim deve retornar erro",
			filters: &domain.TransactionFilters{StartDate: &endDate, EndDate: &startDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, err := service.ListTransactionReports(tt.filters)
			assert.Error(t, err)
			assert.Nil(t, reports)

			summary, err := service.Summarize(tt.filters)
			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestListTransactionReports_SemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC)

	t.Run("Deve converter e ordenar as transações da API por data", func(t *testing.T) {
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockAwin)

		filters := &domain.TransactionFilters{StartDate: &startDate, EndDate: &endDate}

		mockAwin.EXPECT().
			TransactionsByPeriod(filters).
			Return([]awindomain.Transaction{
				makeTransaction(2, 15, awindomain.CommissionStatusApproved, "2023-01-12T08:30:00", 3.50, 35.00),
				makeTransaction(1, 15, awindomain.CommissionStatusPending, "2023-01-10T13:10:00", 5.59, 55.96),
			}, nil)

		reports, err := service.ListTransactionReports(filters)
		require.NoError(t, err)
		require.Len(t, reports, 2)

		// Ordenadas da mais antiga para a mais recente
		assert.Equal(t, int64(1), reports[0].ID)
		assert.Equal(t, int64(2), reports[1].ID)
		assert.Equal(t, "pending", reports[0].CommissionStatus)
		assert.Equal(t, 5.59, reports[0].CommissionAmount)
	})

	t.Run("Deve aplicar os filtros de anunciante e status em memória", func(t *testing.T) {
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockAwin)

		advertiserID := 15
		status := "pending"
		filters := &domain.TransactionFilters{
			StartDate:    &startDate,
			EndDate:      &endDate,
			AdvertiserID: &advertiserID,
			Status:       &status,
		}

		mockAwin.EXPECT().
			TransactionsByPeriod(filters).
			Return([]awindomain.Transaction{
				makeTransaction(1, 15, awindomain.CommissionStatusPending, "2023-01-10T13:10:00", 5.59, 55.96),
				makeTransaction(2, 99, awindomain.CommissionStatusPending, "2023-01-11T09:00:00", 2.00, 20.00),
				makeTransaction(3, 15, awindomain.CommissionStatusApproved, "2023-01-12T08:30:00", 3.50, 35.00),
			}, nil)

		reports, err := service.ListTransactionReports(filters)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, int64(1), reports[0].ID)
	})

	t.Run("Erro da API deve ser propagado", func(t *testing.T) {
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockAwin)

		filters := &domain.TransactionFilters{StartDate: &startDate, EndDate: &endDate}

		mockAwin.EXPECT().
			TransactionsByPeriod(filters).
			Return(nil, assert.AnError)

		reports, err := service.ListTransactionReports(filters)
		assert.Error(t, err)
		assert.Nil(t, reports)
	})
}

func TestListTransactionReports_ComCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC)

	allSynced := []time.Time{
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Período totalmente sincronizado é servido apenas pelo banco", func(t *testing.T) {
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		mockRepo := mocks.NewMockTransactionReportRepository(ctrl)
		service := NewService(mockAwin).(*Service).WithCache(mockRepo)

		filters := &domain.TransactionFilters{StartDate: &startDate, EndDate: &endDate}

		mockRepo.EXPECT().
			ListSyncedDates(startDate, endDate).
			Return(allSynced, nil)

		mockRepo.EXPECT().
			ListByPeriod(filters).
			Return([]*domain.TransactionReport{
				{ID: 1, AdvertiserID: 15, CommissionStatus: "pending", TransactionDate: time.Date(2023, 1, 10, 13, 10, 0, 0, time.UTC)},
			}, nil)

		// Nenhuma chamada à API é esperada

		reports, err := service.ListTransactionReports(filters)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, int64(1), reports[0].ID)
	})

	t.Run("Datas faltantes são buscadas na API em uma única janela e persistidas", func(t *testing.T) {
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		mockRepo := mocks.NewMockTransactionReportRepository(ctrl)
		service := NewService(mockAwin).(*Service).WithCache(mockRepo)

		filters := &domain.TransactionFilters{StartDate: &startDate, EndDate: &endDate}

		// Apenas o primeiro dia está no banco
		mockRepo.EXPECT().
			ListSyncedDates(startDate, endDate).
			Return(allSynced[:1], nil)

		mockRepo.EXPECT().
			ListByPeriod(filters).
			Return([]*domain.TransactionReport{
				{ID: 1, AdvertiserID: 15, CommissionStatus: "pending", TransactionDate: time.Date(2023, 1, 10, 13, 10, 0, 0, time.UTC)},
			}, nil)

		mockAwin.EXPECT().
			TransactionsByPeriod(gomock.Any()).
			DoAndReturn(func(apiFilters *domain.TransactionFilters) ([]awindomain.Transaction, error) {
				// A janela buscada vai da primeira à última data faltante
				assert.Equal(t, "2023-01-11", apiFilters.StartDate.Format(time.DateOnly))
				assert.Equal(t, "2023-01-12", apiFilters.EndDate.Format(time.DateOnly))

				return []awindomain.Transaction{
					// Dia já sincronizado vem na janela, mas é descartado
					makeTransaction(9, 15, awindomain.CommissionStatusPending, "2023-01-10T10:00:00", 1.00, 10.00),
					makeTransaction(2, 15, awindomain.CommissionStatusApproved, "2023-01-11T09:00:00", 2.00, 20.00),
					makeTransaction(3, 15, awindomain.CommissionStatusPending, "2023-01-12T08:30:00", 3.50, 35.00),
				}, nil
			})

		mockRepo.EXPECT().
			SaveOrUpdateBatch(gomock.Any()).
			DoAndReturn(func(reports []*domain.TransactionReport) (int, error) {
				// Somente os dias faltantes já encerrados são persistidos
				assert.Len(t, reports, 2)
				return len(reports), nil
			})

		reports, err := service.ListTransactionReports(filters)
		require.NoError(t, err)
		require.Len(t, reports, 3)

		// Banco + API, ordenadas por data e sem o dia descartado
		assert.Equal(t, int64(1), reports[0].ID)
		assert.Equal(t, int64(2), reports[1].ID)
		assert.Equal(t, int64(3), reports[2].ID)
	})

	t.Run("Transações do dia corrente entram na resposta mas não são persistidas", func(t *testing.T) {
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		mockRepo := mocks.NewMockTransactionReportRepository(ctrl)
		service := NewService(mockAwin).(*Service).WithCache(mockRepo)

		today := time.Now()
		todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		filters := &domain.TransactionFilters{StartDate: &todayStart, EndDate: &todayStart}

		mockRepo.EXPECT().
			ListSyncedDates(todayStart, todayStart).
			Return(nil, nil)

		mockRepo.EXPECT().
			ListByPeriod(filters).
			Return([]*domain.TransactionReport{}, nil)

		mockAwin.EXPECT().
			TransactionsByPeriod(gomock.Any()).
			Return([]awindomain.Transaction{
				makeTransaction(4, 15, awindomain.CommissionStatusPending, today.Format(awindomain.TimeFormat), 1.50, 15.00),
			}, nil)

		// SaveOrUpdateBatch não deve ser chamado para o dia corrente

		reports, err := service.ListTransactionReports(filters)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, int64(4), reports[0].ID)
	})

	t.Run("Erro na API mantém o resultado parcial do banco", func(t *testing.T) {
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		mockRepo := mocks.NewMockTransactionReportRepository(ctrl)
		service := NewService(mockAwin).(*Service).WithCache(mockRepo)

		filters := &domain.TransactionFilters{StartDate: &startDate, EndDate: &endDate}

		mockRepo.EXPECT().
			ListSyncedDates(startDate, endDate).
			Return(allSynced[:1], nil)

		mockRepo.EXPECT().
			ListByPeriod(filters).
			Return([]*domain.TransactionReport{
				{ID: 1, AdvertiserID: 15, CommissionStatus: "pending", TransactionDate: time.Date(2023, 1, 10, 13, 10, 0, 0, time.UTC)},
			}, nil)

		mockAwin.EXPECT().
			TransactionsByPeriod(gomock.Any()).
			Return(nil, assert.AnError)

		reports, err := service.ListTransactionReports(filters)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, int64(1), reports[0].ID)
	})
}

func TestSummarize_SemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC)

	mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
	service := NewService(mockAwin)

	filters := &domain.TransactionFilters{StartDate: &startDate, EndDate: &endDate}

	mockAwin.EXPECT().
		TransactionsByPeriod(filters).
		Return([]awindomain.Transaction{
			makeTransaction(1, 15, awindomain.CommissionStatusPending, "2023-01-10T13:10:00", 5.59, 55.96),
			makeTransaction(2, 15, awindomain.CommissionStatusPending, "2023-01-11T09:00:00", 2.41, 24.04),
			makeTransaction(3, 15, awindomain.CommissionStatusApproved, "2023-01-12T08:30:00", 3.50, 35.00),
		}, nil)

	summary, err := service.Summarize(filters)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, startDate, summary.StartDate)
	assert.Equal(t, endDate, summary.EndDate)
	assert.Equal(t, 3, summary.Transactions)
	assert.Equal(t, 11.5, summary.CommissionTotal)
	assert.Equal(t, 115.0, summary.SaleTotal)

	// Entradas agregadas por status, em ordem alfabética
	require.Len(t, summary.ByStatus, 2)
	assert.Equal(t, "approved", summary.ByStatus[0].CommissionStatus)
	assert.Equal(t, 1, summary.ByStatus[0].Transactions)
	assert.Equal(t, "pending", summary.ByStatus[1].CommissionStatus)
	assert.Equal(t, 2, summary.ByStatus[1].Transactions)
	assert.Equal(t, 8.0, summary.ByStatus[1].CommissionTotal)
}

func TestSummarize_ComCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC)

	allSynced := []time.Time{
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC),
	}

	mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
	mockRepo := mocks.NewMockTransactionReportRepository(ctrl)
	service := NewService(mockAwin).(*Service).WithCache(mockRepo)

	filters := &domain.TransactionFilters{StartDate: &startDate, EndDate: &endDate}

	// O resumo com cache primeiro garante o período sincronizado
	mockRepo.EXPECT().
		ListSyncedDates(startDate, endDate).
		Return(allSynced, nil)

	mockRepo.EXPECT().
		ListByPeriod(filters).
		Return([]*domain.TransactionReport{}, nil)

	mockRepo.EXPECT().
		SummarizeByPeriod(filters).
		Return([]*domain.CommissionSummaryEntry{
			{CommissionStatus: "approved", Transactions: 4, CommissionTotal: 12.40, SaleTotal: 124.00},
			{CommissionStatus: "pending", Transactions: 2, CommissionTotal: 8.01, SaleTotal: 80.10},
		}, nil)

	summary, err := service.Summarize(filters)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 6, summary.Transactions)
	assert.Equal(t, 20.41, summary.CommissionTotal)
	assert.Equal(t, 204.1, summary.SaleTotal)
	require.Len(t, summary.ByStatus, 2)
}
