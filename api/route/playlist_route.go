package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/api/controller"
	"github.com/hurricanemark/SchoolApp.mongo.API/bootstrap"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/mongo"
	"github.com/hurricanemark/SchoolApp.mongo.API/repository"
	"github.com/hurricanemark/SchoolApp.mongo.API/usecase"
)

func NewPlaylistRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	collection := env.PlaylistCollection
	if collection == "" {
		collection = domain.CollectionPlaylist
	}

	repo := repository.NewPlaylistRepository(db, collection)
	ctrl := controller.NewPlaylistController(usecase.NewPlaylistUsecase(repo, timeout))

	playlistGroup := group.Group("/playlist")
	{
		playlistGroup.GET("", ctrl.Get)
		playlistGroup.POST("", ctrl.Create)
		playlistGroup.PUT("/:id", ctrl.AddMovie)
		playlistGroup.DELETE("/:id", ctrl.Delete)
	}
}
