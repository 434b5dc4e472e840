package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"github.com/vfg2006/affiliate-manager-api/internal/usecases/advertising"
	"github.com/vfg2006/affiliate-manager-api/pkg/apiErrors"
)

func AdvertiserList(service advertising.AdvertiserService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		var availableStatusList []string
		availableStatus := make([]domain.AdvertiserStatus, 0)
		if filterStatus != "" {
			availableStatusList = strings.Split(filterStatus, ",")

			for _, status := range availableStatusList {
				availableStatus = append(availableStatus, domain.AdvertiserStatus(status))
			}
		}

		advertisers, err := service.ListAdvertisers(availableStatus)
		if err != nil {
			logrus.Error("Error listing advertisers:", err)

			// Verificar se é um AdvertiserError para obter detalhes específicos do erro
			var advertiserErr *advertising.AdvertiserError
			if errors.As(err, &advertiserErr) {
				apiErrors.WriteError(w, advertiserErr.Code, advertiserErr.Error(), nil)
				return
			}

			// Caso não seja um AdvertiserError específico, verificar erros comuns
			if errors.Is(err, advertising.ErrFetchAdvertisers) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar anunciantes no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar anunciantes", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(advertisers); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CreateAdvertiser cadastra manualmente um anunciante no registro
func CreateAdvertiser(service advertising.AdvertiserService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAdvertiser")

		w.Header().Set("Content-Type", "application/json")

		// Decodifica o corpo da requisição
		var createRequest domain.CreateAdvertiserRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		advertiser, err := service.CreateAdvertiser(&createRequest)
		if err != nil {
			logrus.Error("Error creating advertiser:", err)

			// Verificar se é um AdvertiserError para obter detalhes específicos do erro
			var advertiserErr *advertising.AdvertiserError
			if errors.As(err, &advertiserErr) {
				apiErrors.WriteError(w, advertiserErr.Code, advertiserErr.Error(), map[string]interface{}{
					"advertiser_id": advertiserErr.AdvertiserID,
				})
				return
			}

			switch {
			case errors.Is(err, advertising.ErrMissingAdvertiserData):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os campos external_id e name são obrigatórios", nil)

			case errors.Is(err, advertising.ErrAdvertiserAlreadyExists):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Anunciante já cadastrado", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao cadastrar anunciante", nil)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(advertiser); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateAdvertiser(service advertising.AdvertiserService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAdvertiser")

		// Define o tipo de conteúdo da resposta
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante é obrigatório", nil)
			return
		}

		// Decodifica o corpo da requisição
		var updateRequest domain.UpdateAdvertiserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		err := service.UpdateAdvertiser(&updateRequest)
		if err != nil {
			logrus.Error("Error updating advertiser:", err)

			// Verificar se é um AdvertiserError para obter detalhes específicos do erro
			var advertiserErr *advertising.AdvertiserError
			if errors.As(err, &advertiserErr) {
				apiErrors.WriteError(w, advertiserErr.Code, advertiserErr.Error(), map[string]interface{}{
					"advertiser_id": advertiserErr.AdvertiserID,
					"error_type":    advertiserErr.Err.Error(),
				})
				return
			}

			// Caso não seja um AdvertiserError específico, verificar erros comuns
			switch {
			case errors.Is(err, advertising.ErrAdvertiserIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante é obrigatório", nil)

			case errors.Is(err, advertising.ErrAdvertiserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Anunciante não encontrado", map[string]interface{}{
					"advertiser_id": id,
					"error_type":    "advertiser_not_found",
				})

			case errors.Is(err, advertising.ErrDatabaseOperation) || errors.Is(err, advertising.ErrUpdateAdvertiser):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar anunciante no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao atualizar anunciante", nil)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// GetAdvertiserCommissionGroups consulta os grupos de comissão do anunciante na API da rede
func GetAdvertiserCommissionGroups(service advertising.AdvertiserService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante é obrigatório", nil)
			return
		}

		groups, err := service.CommissionGroupsByAdvertiser(id)
		if err != nil {
			logrus.Error("Error getting commission groups:", err)

			// Verificar se é um AdvertiserError para obter detalhes específicos do erro
			var advertiserErr *advertising.AdvertiserError
			if errors.As(err, &advertiserErr) {
				apiErrors.WriteError(w, advertiserErr.Code, advertiserErr.Error(), map[string]interface{}{
					"advertiser_id": advertiserErr.AdvertiserID,
				})
				return
			}

			switch {
			case errors.Is(err, advertising.ErrAdvertiserIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante é obrigatório", nil)

			case errors.Is(err, advertising.ErrAdvertiserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Anunciante não encontrado", map[string]interface{}{
					"advertiser_id": id,
				})

			case errors.Is(err, advertising.ErrAwinIntegration):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar grupos de comissão na API", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar grupos de comissão", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(groups); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
