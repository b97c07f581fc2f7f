package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/service"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockService *MockAuthService
	handler     *AuthHandler
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterTenant(ctx context.Context, req dto.RegisterTenantRequest) (dto.RegisterTenantData, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.RegisterTenantData), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginData, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.LoginData), args.Error(1)
}

func (m *MockAuthService) GetCurrentUser(ctx context.Context) (dto.CurrentUserData, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.CurrentUserData), args.Error(1)
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockAuthService)
	s.handler = NewAuthHandler(s.mockService)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterTenantRequest{
		TenantName:    "Acme Inc",
		Subdomain:     "acme",
		AdminEmail:    "admin@acme.com",
		AdminPassword: "s3cret-pass",
		AdminFullName: "Ada Admin",
	}

	s.mockService.On("RegisterTenant", mock.Anything, req).Return(dto.RegisterTenantData{
		TenantID:  "tenant1",
		Subdomain: "acme",
		Token:     "signed-token",
	}, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.Register(c)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.Response
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.mockService.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestRegister_SubdomainTaken() {
	req := dto.RegisterTenantRequest{
		TenantName:    "Acme Inc",
		Subdomain:     "acme",
		AdminEmail:    "admin@acme.com",
		AdminPassword: "s3cret-pass",
		AdminFullName: "Ada Admin",
	}

	s.mockService.On("RegisterTenant", mock.Anything, req).
		Return(dto.RegisterTenantData{}, service.ErrSubdomainTaken)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.Register(c)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *AuthHandlerTestSuite) TestRegister_MissingFields() {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"subdomain":"acme"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.Register(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "RegisterTenant", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "admin@acme.com", Password: "s3cret-pass"}

	s.mockService.On("Login", mock.Anything, req).Return(dto.LoginData{
		User:      dto.UserResponse{ID: "user1", Email: "admin@acme.com", Role: domain.RoleTenantAdmin},
		Token:     "signed-token",
		ExpiresIn: 86400,
	}, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.Login(c)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.Response
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
}

func (s *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	req := dto.LoginRequest{Email: "admin@acme.com", Password: "wrong"}

	s.mockService.On("Login", mock.Anything, req).
		Return(dto.LoginData{}, service.ErrInvalidCredentials)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.Login(c)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerTestSuite) TestMe_Success() {
	tenantID := "tenant1"
	s.mockService.On("GetCurrentUser", mock.Anything).Return(dto.CurrentUserData{
		UserResponse: dto.UserResponse{ID: "user1", TenantID: &tenantID, Role: domain.RoleUser},
		Tenant:       &dto.TenantSummary{ID: tenantID, Subdomain: "acme"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/auth/me", nil)

	s.handler.Me(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
