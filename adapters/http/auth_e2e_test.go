package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	authUC "portfolio-api/internal/application/usecase/auth"
	"portfolio-api/pkg/auth"
	"portfolio-api/pkg/logger"
)

type AuthE2ETestSuite struct {
	suite.Suite
	Router     *gin.Engine
	adminEmail string
	adminPass  string
}

func (s *AuthE2ETestSuite) SetupSuite() {

	appLogger := logger.NewNop()

	s.adminEmail = "admin@example.com"
	s.adminPass = "e2e_test_password_123"
	hash, err := auth.HashPassword(s.adminPass)
	if err != nil {
		s.T().Fatalf("Failed to hash admin password: %v", err)
	}

	jwtSvc := auth.NewJWTService("e2e-test-secret", time.Hour)
	loginUseCase := authUC.NewLoginUseCase(s.adminEmail, hash, jwtSvc, appLogger)
	authHandler := NewAuthHandler(loginUseCase)
	authMiddleware := AuthMiddleware(jwtSvc)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)
			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.GET("/health-auth", func(c *gin.Context) {
					c.JSON(http.StatusOK, gin.H{"status": "OK"})
				})
			}
		}
	}

	s.Router = router
}

func TestAuthE2E(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) Test_Login_Flow() {

	bodyBad, _ := json.Marshal(gin.H{"email": s.adminEmail, "password": "wrongpassword"})
	reqBad := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBuffer(bodyBad))
	reqBad.Header.Set("Content-Type", "application/json")

	rrBad := httptest.NewRecorder()
	s.Router.ServeHTTP(rrBad, reqBad)

	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	bodyGood, _ := json.Marshal(gin.H{"email": s.adminEmail, "password": s.adminPass})
	reqGood := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBuffer(bodyGood))
	reqGood.Header.Set("Content-Type", "application/json")

	rrGood := httptest.NewRecorder()
	s.Router.ServeHTTP(rrGood, reqGood)

	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var loginResponse map[string]string
	json.Unmarshal(rrGood.Body.Bytes(), &loginResponse)
	accessToken := loginResponse["access_token"]
	assert.NotEmpty(s.T(), accessToken)

	reqAuth := httptest.NewRequest(http.MethodGet, "/api/admin/health-auth", nil)
	reqAuth.Header.Set("Authorization", "Bearer "+accessToken)

	rrAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAuth, reqAuth)

	assert.Equal(s.T(), http.StatusOK, rrAuth.Code)

	reqNoAuth := httptest.NewRequest(http.MethodGet, "/api/admin/health-auth", nil)
	rrNoAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrNoAuth, reqNoAuth)

	assert.Equal(s.T(), http.StatusUnauthorized, rrNoAuth.Code)

	reqWrongEmail := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login",
		bytes.NewBufferString(`{"email":"someone.else@example.com","password":"`+s.adminPass+`"}`))
	reqWrongEmail.Header.Set("Content-Type", "application/json")

	rrWrongEmail := httptest.NewRecorder()
	s.Router.ServeHTTP(rrWrongEmail, reqWrongEmail)

	assert.Equal(s.T(), http.StatusUnauthorized, rrWrongEmail.Code)
}

func (s *AuthE2ETestSuite) Test_Login_RejectsMalformedBody() {

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBufferString(`{"email":`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *AuthE2ETestSuite) Test_AuthMiddleware_RejectsBadToken() {

	req := httptest.NewRequest(http.MethodGet, "/api/admin/health-auth", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)

	reqNoBearer := httptest.NewRequest(http.MethodGet, "/api/admin/health-auth", nil)
	reqNoBearer.Header.Set("Authorization", "Token abc")

	rrNoBearer := httptest.NewRecorder()
	s.Router.ServeHTTP(rrNoBearer, reqNoBearer)

	assert.Equal(s.T(), http.StatusUnauthorized, rrNoBearer.Code)
}
