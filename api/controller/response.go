package controller

import (
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, errorBody{Code: code, Message: message})
}

func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(200, gin.H{
		key:     data,
		"count": count,
	})
}
