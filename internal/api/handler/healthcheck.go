package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthcheckHandler responde com o status do serviço. Também é o alvo do
// keep-alive que mantém a instância acordada em planos com suspensão por
// inatividade.
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		status := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
