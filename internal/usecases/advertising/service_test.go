package advertising

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
	awinmocks "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/mocks"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestListAdvertisers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Lista anunciantes com sucesso", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		expected := []*domain.Advertiser{
			{ID: "abc123", ExternalID: 15483, Name: "Óptica Vista Clara", Status: domain.AdvertiserStatusActive},
			{ID: "def456", ExternalID: 21877, Name: "Moda Bella Shop", Status: domain.AdvertiserStatusInactive},
		}

		status := []domain.AdvertiserStatus{domain.AdvertiserStatusActive, domain.AdvertiserStatusInactive}
		mockRepo.EXPECT().ListAdvertisers(status).Return(expected, nil)

		advertisers, err := service.ListAdvertisers(status)
		require.NoError(t, err)
		assert.Equal(t, expected, advertisers)
	})

	t.Run("Erro do banco é reportado", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().ListAdvertisers(gomock.Any()).Return(nil, assert.AnError)

		advertisers, err := service.ListAdvertisers(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFetchAdvertisers))
		assert.Nil(t, advertisers)
	})
}

func TestCreateAdvertiser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Campos obrigatórios ausentes retornam erro", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		advertiser, err := service.CreateAdvertiser(&domain.CreateAdvertiserRequest{Name: "Sem external_id"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingAdvertiserData))
		assert.Nil(t, advertiser)
	})

	t.Run("External_id já cadastrado retorna erro", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().GetAdvertiserByExternalID(15483).Return(&domain.Advertiser{ID: "abc123", ExternalID: 15483}, nil)

		advertiser, err := service.CreateAdvertiser(&domain.CreateAdvertiserRequest{ExternalID: 15483, Name: "Óptica Vista Clara"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAdvertiserAlreadyExists))
		assert.Nil(t, advertiser)

		var advertiserErr *AdvertiserError
		require.True(t, errors.As(err, &advertiserErr))
		assert.Equal(t, "abc123", advertiserErr.AdvertiserID)
	})

	t.Run("Anunciante é criado ativo com id gerado", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().GetAdvertiserByExternalID(15483).Return(nil, nil)
		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(advertisers []*domain.Advertiser) error {
				require.Len(t, advertisers, 1)
				assert.Equal(t, 15483, advertisers[0].ExternalID)
				assert.Equal(t, "Óptica Vista Clara", advertisers[0].Name)
				assert.Equal(t, domain.AdvertiserStatusActive, advertisers[0].Status)
				assert.Len(t, advertisers[0].ID, 6)
				return nil
			})

		advertiser, err := service.CreateAdvertiser(&domain.CreateAdvertiserRequest{ExternalID: 15483, Name: "Óptica Vista Clara"})
		require.NoError(t, err)
		assert.Equal(t, 15483, advertiser.ExternalID)
		assert.Len(t, advertiser.ID, 6)
	})

	t.Run("Erro ao salvar anunciante", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().GetAdvertiserByExternalID(15483).Return(nil, nil)
		mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(assert.AnError)

		advertiser, err := service.CreateAdvertiser(&domain.CreateAdvertiserRequest{ExternalID: 15483, Name: "Óptica Vista Clara"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDatabaseOperation))
		assert.Nil(t, advertiser)
	})
}

func TestUpdateAdvertiser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newStatus := "INACTIVE"

	tests := []struct {
		name        string
		request     *domain.UpdateAdvertiserRequest
		setup       func(repo *mocks.MockAdvertiserRepository)
		expectedErr error
	}{
		{
			name:        "ID ausente retorna erro de validação",
			request:     &domain.UpdateAdvertiserRequest{},
			setup:       func(repo *mocks.MockAdvertiserRepository) {},
			expectedErr: ErrAdvertiserIDRequired,
		},
		{
			name:    "Erro ao consultar anunciante",
			request: &domain.UpdateAdvertiserRequest{ID: "abc123", Status: &newStatus},
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().GetAdvertiserByID("abc123").Return(nil, assert.AnError)
			},
			expectedErr: ErrDatabaseOperation,
		},
		{
			name:    "Anunciante não encontrado",
			request: &domain.UpdateAdvertiserRequest{ID: "abc123", Status: &newStatus},
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().GetAdvertiserByID("abc123").Return(nil, nil)
			},
			expectedErr: ErrAdvertiserNotFound,
		},
		{
			name:    "Erro ao atualizar anunciante",
			request: &domain.UpdateAdvertiserRequest{ID: "abc123", Status: &newStatus},
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().GetAdvertiserByID("abc123").Return(&domain.Advertiser{ID: "abc123"}, nil)
				repo.EXPECT().UpdateAdvertiser(gomock.Any()).Return(assert.AnError)
			},
			expectedErr: ErrUpdateAdvertiser,
		},
		{
			name:    "Anunciante atualizado com sucesso",
			request: &domain.UpdateAdvertiserRequest{ID: "abc123", Status: &newStatus},
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().GetAdvertiserByID("abc123").Return(&domain.Advertiser{ID: "abc123"}, nil)
				repo.EXPECT().UpdateAdvertiser(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
			mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
			tt.setup(mockRepo)

			service := NewService(mockRepo, mockAwin)

			err := service.UpdateAdvertiser(tt.request)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestEnsureRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := []awindomain.Transaction{
		{ID: 1, AdvertiserID: 15483},
		{ID: 2, AdvertiserID: 15483},
		{ID: 3, AdvertiserID: 33092},
	}

	t.Run("Erro ao consultar anunciantes existentes", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().ListExternalIDsMap().Return(nil, assert.AnError)

		result, err := service.EnsureRegistered(transactions)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFetchAdvertisers))
		assert.Nil(t, result)
	})

	t.Run("Anunciantes já cadastrados não são recriados", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		existing := map[int]string{15483: "abc123", 33092: "def456"}
		mockRepo.EXPECT().ListExternalIDsMap().Return(existing, nil)

		result, err := service.EnsureRegistered(transactions)
		require.NoError(t, err)
		assert.Equal(t, existing, result)
	})

	t.Run("Anunciantes novos são cadastrados com nome e status padrão", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().ListExternalIDsMap().Return(map[int]string{15483: "abc123"}, nil)

		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(advertisers []*domain.Advertiser) error {
				require.Len(t, advertisers, 1)
				assert.Equal(t, 33092, advertisers[0].ExternalID)
				assert.Equal(t, "Anunciante 33092", advertisers[0].Name)
				assert.Equal(t, domain.AdvertiserStatusActive, advertisers[0].Status)
				assert.Len(t, advertisers[0].ID, 6)
				return nil
			})

		result, err := service.EnsureRegistered(transactions)
		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "abc123", result[15483])
		assert.NotEmpty(t, result[33092])
	})

	t.Run("Erro ao salvar anunciantes novos", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().ListExternalIDsMap().Return(map[int]string{}, nil)
		mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(assert.AnError)

		result, err := service.EnsureRegistered(transactions)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDatabaseOperation))
		assert.Nil(t, result)
	})

	t.Run("Sem transações não há nada a cadastrar", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().ListExternalIDsMap().Return(map[int]string{}, nil)

		result, err := service.EnsureRegistered(nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestCommissionGroupsByAdvertiser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ID ausente retorna erro de validação", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		groups, err := service.CommissionGroupsByAdvertiser("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAdvertiserIDRequired))
		assert.Nil(t, groups)
	})

	t.Run("Anunciante não encontrado", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().GetAdvertiserByID("abc123").Return(nil, nil)

		groups, err := service.CommissionGroupsByAdvertiser("abc123")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAdvertiserNotFound))
		assert.Nil(t, groups)

		var advertiserErr *AdvertiserError
		require.True(t, errors.As(err, &advertiserErr))
		assert.Equal(t, "abc123", advertiserErr.AdvertiserID)
	})

	t.Run("Erro na API de comissões", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		mockRepo.EXPECT().GetAdvertiserByID("abc123").Return(&domain.Advertiser{ID: "abc123", ExternalID: 15483}, nil)
		mockAwin.EXPECT().CommissionGroupsByAdvertiser(15483).Return(nil, assert.AnError)

		groups, err := service.CommissionGroupsByAdvertiser("abc123")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAwinIntegration))
		assert.Nil(t, groups)
	})

	t.Run("Grupos de comissão são resolvidos pelo external_id", func(t *testing.T) {
		mockRepo := mocks.NewMockAdvertiserRepository(ctrl)
		mockAwin := awinmocks.NewMockAwinIntegrator(ctrl)
		service := NewService(mockRepo, mockAwin)

		expected := []awindomain.CommissionGroup{
			{GroupID: "42", GroupName: "Default Commission", AdvertiserID: 15483},
			{GroupID: "43", GroupName: "Promoções", AdvertiserID: 15483},
		}

		mockRepo.EXPECT().GetAdvertiserByID("abc123").Return(&domain.Advertiser{ID: "abc123", ExternalID: 15483}, nil)
		mockAwin.EXPECT().CommissionGroupsByAdvertiser(15483).Return(expected, nil)

		groups, err := service.CommissionGroupsByAdvertiser("abc123")
		require.NoError(t, err)
		assert.Equal(t, expected, groups)
	})
}
