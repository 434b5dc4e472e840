package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/affiliate-manager-api/internal/domain"
	"github.com/vfg2006/affiliate-manager-api/pkg/apiErrors"
)

func requestWithRole(roleID int) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	claims := &domain.Claims{UserID: 10, UserRoleID: roleID}

	return request.WithContext(context.WithValue(request.Context(), ContextKeyUser, claims))
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		middleware     func(http.Handler) http.Handler
		roleID         int
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Administrador acessa rota restrita a administradores",
			middleware:     AdminOnly(),
			roleID:         RoleAdmin,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Analista não acessa rota restrita a administradores",
			middleware:     AdminOnly(),
			roleID:         RoleAnalyst,
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:           "Supervisor acessa rota de administradores e supervisores",
			middleware:     AdminOrSupervisor(),
			roleID:         RoleSupervisor,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Analista não acessa rota de administradores e supervisores",
			middleware:     AdminOrSupervisor(),
			roleID:         RoleAnalyst,
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:           "Analista acessa rota liberada para todos os perfis",
			middleware:     AllRoles(),
			roleID:         RoleAnalyst,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			recorder := httptest.NewRecorder()

			tt.middleware(next).ServeHTTP(recorder, requestWithRole(tt.roleID))

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, nextCalled)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, recorder).Code)
			}
		})
	}

	t.Run("Requisição sem claims no contexto retorna 401", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler não deveria ser chamado")
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/users", nil)

		AdminOnly()(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, recorder).Code)
	})
}
