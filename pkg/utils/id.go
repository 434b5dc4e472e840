package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera o identificador interno curto usado nos registros de
// anunciantes.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
