package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/bootstrap"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"golang.org/x/crypto/bcrypt"
)

type LoginController struct {
	LoginUsecase domain.LoginUsecase
	Env          *bootstrap.Env
}

func NewLoginController(uc domain.LoginUsecase, env *bootstrap.Env) *LoginController {
	return &LoginController{LoginUsecase: uc, Env: env}
}

func (c *LoginController) Login(ctx *gin.Context) {
	var request domain.LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := c.LoginUsecase.GetUserByEmail(ctx.Request.Context(), request.Email)
	if err != nil {
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "user not found with the given email")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
		return
	}

	accessToken, err := c.LoginUsecase.CreateAccessToken(&user, c.Env.AccessTokenSecret, c.Env.AccessTokenExpiryHour)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, domain.LoginResponse{AccessToken: accessToken})
}
