package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	database "taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/token"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/pkg/test"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type AuthHandlerSuite struct {
	suite.Suite
	db     *database.DB
	router *gin.Engine
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.db = test.InitTestDB()

	userRepo := repository.NewUserRepository(s.db)
	taskRepo := repository.NewTaskRepository(s.db)

	codec, err := token.NewJWTCodec(testSecret, 3600000)
	s.Require().NoError(err)

	s.router = setupTestRouter(userRepo, taskRepo, codec)
}

func (s *AuthHandlerSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

// setupTestRouter mounts the API routes directly to avoid an import cycle
// with the routes package.
func setupTestRouter(userRepo port.UserRepository, taskRepo port.TaskRepository, codec port.TokenCodec) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authHandler := NewAuthHandler(service.NewAuthService(userRepo, codec), nil)
	taskHandler := NewTaskHandler(service.NewTaskService(taskRepo), nil)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.BearerAuth(codec, userRepo))
	{
		tasks.GET("", taskHandler.ListOpen)
		tasks.POST("", taskHandler.Create)
		tasks.PUT("/:id/complete", taskHandler.Complete)
	}

	return router
}

func (s *AuthHandlerSuite) doJSON(method, path, body, bearer string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	return rr
}

func (s *AuthHandlerSuite) TestRegisterSuccess() {
	rr := s.doJSON("POST", "/api/auth/register", `{"email": "a@b.c", "fullName": "Al Bec", "password": "pw1"}`, "")

	Expect(rr.Code).To(Equal(http.StatusOK))

	body, _ := io.ReadAll(rr.Body)

	Expect(string(body)).To(Equal("User registered successfully"))
}

func (s *AuthHandlerSuite) TestRegisterDuplicateEmail() {
	rr := s.doJSON("POST", "/api/auth/register", `{"email": "a@b.c", "password": "pw1"}`, "")
	Expect(rr.Code).To(Equal(http.StatusOK))

	rr = s.doJSON("POST", "/api/auth/register", `{"email": "a@b.c", "password": "other"}`, "")

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	body, _ := io.ReadAll(rr.Body)

	Expect(string(body)).To(Equal("Email already exists"))
}

func (s *AuthHandlerSuite) TestLoginSuccess() {
	rr := s.doJSON("POST", "/api/auth/register", `{"email": "a@b.c", "password": "pw1"}`, "")
	Expect(rr.Code).To(Equal(http.StatusOK))

	rr = s.doJSON("POST", "/api/auth/login", `{"email": "a@b.c", "password": "pw1"}`, "")

	Expect(rr.Code).To(Equal(http.StatusOK))

	data := gin.H{}
	body, _ := io.ReadAll(rr.Body)
	json.Unmarshal(body, &data)

	Expect(data["token"]).ToNot(BeEmpty())
}

func (s *AuthHandlerSuite) TestLoginWrongPassword() {
	rr := s.doJSON("POST", "/api/auth/register", `{"email": "a@b.c", "password": "pw1"}`, "")
	Expect(rr.Code).To(Equal(http.StatusOK))

	rr = s.doJSON("POST", "/api/auth/login", `{"email": "a@b.c", "password": "nope"}`, "")

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *AuthHandlerSuite) TestLoginUnknownEmail() {
	rr := s.doJSON("POST", "/api/auth/login", `{"email": "nobody@b.c", "password": "pw1"}`, "")

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *AuthHandlerSuite) TestRegisterMalformedBody() {
	rr := s.doJSON("POST", "/api/auth/register", `{"email": `, "")

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}
