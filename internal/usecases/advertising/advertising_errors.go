package advertising

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de anunciantes
var (
	// Erros de validação
	ErrAdvertiserIDRequired    = errors.New("advertiser ID is required")
	ErrAdvertiserNotFound      = errors.New("advertiser not found")
	ErrMissingAdvertiserData   = errors.New("external ID and name are required")
	ErrAdvertiserAlreadyExists = errors.New("advertiser already exists")

	// Erros de serviços externos
	ErrAwinIntegration = errors.New("error fetching data from Awin")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrUpdateAdvertiser  = errors.New("error updating advertiser")
	ErrFetchAdvertisers  = errors.New("error fetching advertisers from database")

	// Erros de sincronização
	ErrGenerateID = errors.New("error generating ID")
)

// AdvertiserError é um erro com contexto adicional para anunciantes
type AdvertiserError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	AdvertiserID string // ID do anunciante envolvido (quando aplicável)
	Details      string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AdvertiserError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AdvertiserError) Unwrap() error {
	return e.Err
}

// NewAdvertiserError cria um novo AdvertiserError
func NewAdvertiserError(err error, code string, details string) *AdvertiserError {
	return &AdvertiserError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAdvertiserErrorWithID cria um novo AdvertiserError com ID do anunciante
func NewAdvertiserErrorWithID(err error, code string, advertiserID string, details string) *AdvertiserError {
	return &AdvertiserError{
		Err:          err,
		Code:         code,
		AdvertiserID: advertiserID,
		Details:      details,
	}
}
