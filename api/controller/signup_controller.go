package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/bootstrap"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"golang.org/x/crypto/bcrypt"
)

type SignupController struct {
	SignupUsecase domain.SignupUsecase
	Env           *bootstrap.Env
}

func NewSignupController(uc domain.SignupUsecase, env *bootstrap.Env) *SignupController {
	return &SignupController{SignupUsecase: uc, Env: env}
}

func (c *SignupController) Signup(ctx *gin.Context) {
	var request domain.SignupRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if _, err := c.SignupUsecase.GetUserByEmail(ctx.Request.Context(), request.Email); err == nil {
		ErrorResponse(ctx, http.StatusConflict, "USER_EXISTS", "user already exists with the given email")
		return
	}

	encryptedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	user := domain.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(encryptedPassword),
	}

	if err := c.SignupUsecase.Create(ctx.Request.Context(), &user); err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	accessToken, err := c.SignupUsecase.CreateAccessToken(&user, c.Env.AccessTokenSecret, c.Env.AccessTokenExpiryHour)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, domain.SignupResponse{AccessToken: accessToken})
}
