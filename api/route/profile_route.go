package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/api/controller"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/mongo"
	"github.com/hurricanemark/SchoolApp.mongo.API/repository"
	"github.com/hurricanemark/SchoolApp.mongo.API/usecase"
)

func NewProfileRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewUserRepository(db, domain.CollectionUser)
	ctrl := controller.NewProfileController(usecase.NewProfileUsecase(repo, timeout))

	group.GET("/profile", ctrl.Fetch)
}
