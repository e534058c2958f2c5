package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
)

type ProfileController struct {
	ProfileUsecase domain.ProfileUsecase
}

func NewProfileController(uc domain.ProfileUsecase) *ProfileController {
	return &ProfileController{ProfileUsecase: uc}
}

func (c *ProfileController) Fetch(ctx *gin.Context) {
	userID := ctx.GetString("x-user-id")

	profile, err := c.ProfileUsecase.GetProfileByID(ctx.Request.Context(), userID)
	if err != nil {
		ErrorResponse(ctx, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
		return
	}

	SuccessResponse(ctx, "profile", profile, 1)
}
