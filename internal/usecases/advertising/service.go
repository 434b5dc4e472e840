package advertising

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin"
	awindomain "github.com/vfg2006/affiliate-manager-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/affiliate-manager-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"github.com/vfg2006/affiliate-manager-api/pkg/apiErrors"
	"github.com/vfg2006/affiliate-manager-api/pkg/utils"
)

type AdvertiserService interface {
	ListAdvertisers(availableStatus []domain.AdvertiserStatus) ([]*domain.Advertiser, error)
	CreateAdvertiser(request *domain.CreateAdvertiserRequest) (*domain.Advertiser, error)
	UpdateAdvertiser(request *domain.UpdateAdvertiserRequest) error
	EnsureRegistered(transactions []awindomain.Transaction) (map[int]string, error)
	CommissionGroupsByAdvertiser(advertiserID string) ([]awindomain.CommissionGroup, error)
}

type Service struct {
	advertiserRepository repository.AdvertiserRepository
	awinService          awin.AwinIntegrator
}

func NewService(
	advertiserRepository repository.AdvertiserRepository,
	awinService awin.AwinIntegrator,
) AdvertiserService {
	return &Service{
		advertiserRepository: advertiserRepository,
		awinService:          awinService,
	}
}

func (s *Service) ListAdvertisers(availableStatus []domain.AdvertiserStatus) ([]*domain.Advertiser, error) {
	advertisers, err := s.advertiserRepository.ListAdvertisers(availableStatus)
	if err != nil {
		return nil, NewAdvertiserError(ErrFetchAdvertisers, apiErrors.ErrDatabaseOperation, "Falha ao listar anunciantes no banco de dados")
	}

	return advertisers, nil
}

// CreateAdvertiser cadastra manualmente um anunciante com o nome informado,
// antes mesmo da primeira transação dele aparecer na sincronização.
func (s *Service) CreateAdvertiser(request *domain.CreateAdvertiserRequest) (*domain.Advertiser, error) {
	if request.ExternalID == 0 || request.Name == "" {
		return nil, ErrMissingAdvertiserData
	}

	existing, err := s.advertiserRepository.GetAdvertiserByExternalID(request.ExternalID)
	if err != nil {
		logrus.Error("Error getting advertiser by external id on the repository:", err)
		return nil, NewAdvertiserError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar anunciante no banco de dados")
	}

	if existing != nil {
		return nil, NewAdvertiserErrorWithID(ErrAdvertiserAlreadyExists, apiErrors.ErrInvalidRequest, existing.ID, "Anunciante já cadastrado para este external_id")
	}

	advertiserID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAdvertiserError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para anunciante")
	}

	advertiser := &domain.Advertiser{
		ID:         advertiserID,
		ExternalID: request.ExternalID,
		Name:       request.Name,
		Status:     domain.AdvertiserStatusActive,
	}

	err = s.advertiserRepository.SaveOrUpdate([]*domain.Advertiser{advertiser})
	if err != nil {
		logrus.Error("Error saving advertiser on the repository:", err)
		return nil, NewAdvertiserError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar anunciante")
	}

	return advertiser, nil
}

func (s *Service) UpdateAdvertiser(request *domain.UpdateAdvertiserRequest) error {
	if request.ID == "" {
		return ErrAdvertiserIDRequired
	}

	// Busca o anunciante para verificar se existe
	advertiser, err := s.advertiserRepository.GetAdvertiserByID(request.ID)
	if err != nil {
		logrus.Error("Error getting advertiser by id on the repository:", err)
		return NewAdvertiserError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar anunciante no banco de dados")
	}

	if advertiser == nil {
		return NewAdvertiserErrorWithID(ErrAdvertiserNotFound, apiErrors.ErrInvalidRequest, request.ID, "Anunciante não encontrado")
	}

	err = s.advertiserRepository.UpdateAdvertiser(request)
	if err != nil {
		logrus.Error("Error updating advertiser on the repository:", err)
		return NewAdvertiserErrorWithID(ErrUpdateAdvertiser, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar anunciante no banco de dados")
	}

	return nil
}

// EnsureRegistered cadastra os anunciantes presentes nas transações que ainda
// não existem no banco de dados. Retorna o mapa de external_id para id interno,
// já incluindo os anunciantes recém cadastrados.
func (s *Service) EnsureRegistered(transactions []awindomain.Transaction) (map[int]string, error) {
	existingAdvertisers, err := s.advertiserRepository.ListExternalIDsMap()
	if err != nil {
		logrus.WithField("error", err).Error("Error getting advertisers from database")
		return nil, NewAdvertiserError(ErrFetchAdvertisers, apiErrors.ErrDatabaseOperation, "Falha ao consultar anunciantes existentes no banco de dados")
	}

	advertisersToCreate := make([]*domain.Advertiser, 0)
	for _, externalID := range awindomain.DistinctAdvertiserIDs(transactions) {
		if _, exists := existingAdvertisers[externalID]; exists {
			continue
		}

		advertiserID, err := utils.GenerateID()
		if err != nil {
			return existingAdvertisers, NewAdvertiserError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para anunciante")
		}

		advertiser := &domain.Advertiser{
			ID:         advertiserID,
			ExternalID: externalID,
			Name:       fmt.Sprintf("Anunciante %d", externalID),
			Status:     domain.AdvertiserStatusActive,
		}

		advertisersToCreate = append(advertisersToCreate, advertiser)
		existingAdvertisers[externalID] = advertiserID
	}

	if len(advertisersToCreate) > 0 {
		err = s.advertiserRepository.SaveOrUpdate(advertisersToCreate)
		if err != nil {
			return nil, NewAdvertiserError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar anunciantes")
		}

		logrus.Infof("%d advertisers were successfully registered", len(advertisersToCreate))
	}

	return existingAdvertisers, nil
}

// CommissionGroupsByAdvertiser consulta os grupos de comissão do anunciante
// diretamente na API da rede, resolvendo o id interno para o external_id.
func (s *Service) CommissionGroupsByAdvertiser(advertiserID string) ([]awindomain.CommissionGroup, error) {
	if advertiserID == "" {
		return nil, ErrAdvertiserIDRequired
	}

	advertiser, err := s.advertiserRepository.GetAdvertiserByID(advertiserID)
	if err != nil {
		logrus.Error("Error getting advertiser by id on the repository:", err)
		return nil, NewAdvertiserError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar anunciante no banco de dados")
	}

	if advertiser == nil {
		return nil, NewAdvertiserErrorWithID(ErrAdvertiserNotFound, apiErrors.ErrInvalidRequest, advertiserID, "Anunciante não encontrado")
	}

	groups, err := s.awinService.CommissionGroupsByAdvertiser(advertiser.ExternalID)
	if err != nil {
		return nil, NewAdvertiserErrorWithID(ErrAwinIntegration, apiErrors.ErrExternalService, advertiserID, "Falha ao consultar grupos de comissão na API")
	}

	return groups, nil
}
