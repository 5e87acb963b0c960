//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"company-registry/internal/domain/auth"
	"company-registry/internal/usecase"
	"company-registry/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// identityInjector stands in for the auth middleware on protected routes.
func identityInjector(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", auth.Identity{UserID: userID})
		c.Next()
	}
}

type stubAuthUseCase struct {
	loginFn       func(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error)
	currentUserFn func(ctx context.Context, userID int64) (*readmodel.UserView, error)
}

func (s *stubAuthUseCase) Login(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error) {
	return s.loginFn(ctx, credentials)
}

func (s *stubAuthUseCase) CurrentUser(ctx context.Context, userID int64) (*readmodel.UserView, error) {
	return s.currentUserFn(ctx, userID)
}

type stubUserUseCase struct {
	registerFn func(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error)
	updateFn   func(ctx context.Context, id int64, input usecase.UpdateUserInput, ident auth.Identity) (*readmodel.UserView, error)
	deleteFn   func(ctx context.Context, id int64, ident auth.Identity) error
}

func (s *stubUserUseCase) Register(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error) {
	return s.registerFn(ctx, credentials)
}

func (s *stubUserUseCase) Update(ctx context.Context, id int64, input usecase.UpdateUserInput, ident auth.Identity) (*readmodel.UserView, error) {
	return s.updateFn(ctx, id, input, ident)
}

func (s *stubUserUseCase) Delete(ctx context.Context, id int64, ident auth.Identity) error {
	return s.deleteFn(ctx, id, ident)
}

type stubCompanyUseCase struct {
	createFn func(ctx context.Context, input usecase.CreateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error)
	listFn   func(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error)
	getFn    func(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error)
	updateFn func(ctx context.Context, id int64, input usecase.UpdateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error)
	deleteFn func(ctx context.Context, id int64, ident auth.Identity) error
}

func (s *stubCompanyUseCase) Create(ctx context.Context, input usecase.CreateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error) {
	return s.createFn(ctx, input, ident)
}

func (s *stubCompanyUseCase) List(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error) {
	return s.listFn(ctx, ident)
}

func (s *stubCompanyUseCase) Get(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error) {
	return s.getFn(ctx, id, ident)
}

func (s *stubCompanyUseCase) Update(ctx context.Context, id int64, input usecase.UpdateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error) {
	return s.updateFn(ctx, id, input, ident)
}

func (s *stubCompanyUseCase) Delete(ctx context.Context, id int64, ident auth.Identity) error {
	return s.deleteFn(ctx, id, ident)
}
