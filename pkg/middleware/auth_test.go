package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/affiliate-manager-api/internal/config"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"github.com/vfg2006/affiliate-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/affiliate-manager-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func newTestAuthenticator() authenticating.Authenticator {
	cfg := &config.Config{
		Auth: config.Auth{Secret: testSecret},
	}

	// O repositório não é usado pela validação de token
	return authenticating.NewService(nil, cfg)
}

func signTestToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := &domain.Claims{
		UserID:     1,
		UserName:   "Maria",
		UserEmail:  "maria@empresa.com",
		UserActive: true,
		UserRoleID: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))

	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	middleware := AuthMiddleware(newTestAuthenticator())

	t.Run("Rotas públicas passam sem token", func(t *testing.T) {
		for _, path := range []string{"/v1/login", "/healthcheck"} {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, path, nil)

			middleware(next).ServeHTTP(recorder, request)

			assert.True(t, nextCalled, "rota pública %s deveria passar", path)
			assert.Equal(t, http.StatusOK, recorder.Code)
		}
	})

	t.Run("Sem cabeçalho Authorization retorna 401", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler não deveria ser chamado")
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/advertisers", nil)

		middleware(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, recorder).Code)
	})

	t.Run("Cabeçalho sem prefixo Bearer retorna 401", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler não deveria ser chamado")
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/advertisers", nil)
		request.Header.Set("Authorization", "Basic dXNlcjpzZW5oYQ==")

		middleware(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, recorder).Code)
	})

	t.Run("Token inválido retorna 401", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler não deveria ser chamado")
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/advertisers", nil)
		request.Header.Set("Authorization", "Bearer token-corrompido")

		middleware(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, recorder).Code)
	})

	t.Run("Token expirado retorna o código de expiração", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler não deveria ser chamado")
		})

		token := signTestToken(t, time.Now().Add(-time.Hour))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/advertisers", nil)
		request.Header.Set("Authorization", "Bearer "+token)

		middleware(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrExpiredToken, decodeAPIError(t, recorder).Code)
	})

	t.Run("Token válido injeta as claims no contexto", func(t *testing.T) {
		var receivedClaims *domain.Claims
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			require.True(t, ok)
			receivedClaims = claims
		})

		token := signTestToken(t, time.Now().Add(time.Hour))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/advertisers", nil)
		request.Header.Set("Authorization", "Bearer "+token)

		middleware(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, receivedClaims)
		assert.Equal(t, 1, receivedClaims.UserID)
		assert.Equal(t, "maria@empresa.com", receivedClaims.UserEmail)
		assert.Equal(t, RoleAdmin, receivedClaims.UserRoleID)
	})
}
