package awindomain

// ErrorResponse representa a estrutura de erro da API da Awin.
type ErrorResponse struct {
	Error       string `json:"error,omitempty"`
	Description string `json:"description,omitempty"`
}

// HasDescription indica se a resposta de erro traz uma descrição utilizável.
func (e *ErrorResponse) HasDescription() bool {
	return e != nil && e.Description != ""
}
