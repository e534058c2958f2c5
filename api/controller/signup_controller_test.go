package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/api/controller"
	"github.com/hurricanemark/SchoolApp.mongo.API/bootstrap"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func setupSignupRouter(uc domain.SignupUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	env := &bootstrap.Env{AccessTokenSecret: "secret", AccessTokenExpiryHour: 2}
	ctrl := controller.NewSignupController(uc, env)

	engine := gin.New()
	engine.POST("/api/signup", ctrl.Signup)

	return engine
}

func TestSignupController_Signup(t *testing.T) {
	t.Run("new user gets an access token", func(t *testing.T) {
		mockUsecase := &mocks.SignupUsecase{}
		mockUsecase.On("GetUserByEmail", mock.Anything, "alice@example.com").
			Return(domain.User{}, mongodriver.ErrNoDocuments)
		mockUsecase.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*domain.User)
				user.ID = primitive.NewObjectID()

				// the stored password must be a bcrypt hash, never the plaintext
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")))
			}).
			Return(nil)
		mockUsecase.On("CreateAccessToken", mock.AnythingOfType("*domain.User"), "secret", 2).
			Return("a.jwt.token", nil)

		engine := setupSignupRouter(mockUsecase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/signup",
			strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"hunter2"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "a.jwt.token")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("duplicate email is a 409", func(t *testing.T) {
		mockUsecase := &mocks.SignupUsecase{}
		mockUsecase.On("GetUserByEmail", mock.Anything, "alice@example.com").
			Return(domain.User{Name: "alice", Email: "alice@example.com"}, nil)

		engine := setupSignupRouter(mockUsecase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/signup",
			strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"hunter2"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "USER_EXISTS")
		mockUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		mockUsecase := &mocks.SignupUsecase{}

		engine := setupSignupRouter(mockUsecase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/signup",
			strings.NewReader(`{"name":"alice","email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})
}
