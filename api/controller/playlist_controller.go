package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaylistController struct {
	PlaylistUsecase domain.PlaylistUsecase
}

func NewPlaylistController(uc domain.PlaylistUsecase) *PlaylistController {
	return &PlaylistController{PlaylistUsecase: uc}
}

// Get returns every playlist in the collection. No filter, no pagination.
func (c *PlaylistController) Get(ctx *gin.Context) {
	playlists, err := c.PlaylistUsecase.Fetch(ctx.Request.Context())
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, playlists)
}

func (c *PlaylistController) Create(ctx *gin.Context) {
	var playlist domain.Playlist

	if err := ctx.ShouldBindJSON(&playlist); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := c.PlaylistUsecase.Create(ctx.Request.Context(), &playlist); err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.Header("Location", "/api/playlist/"+playlist.ID.Hex())
	ctx.JSON(http.StatusCreated, playlist)
}

// AddMovie appends a movie id to the playlist's items with set semantics.
// The request body is the bare movie id as a JSON string. An id that
// matches no playlist is still a 204; the operation is a no-op then.
func (c *PlaylistController) AddMovie(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id must be a 24-character hex string")
		return
	}

	var movieID string
	if err := ctx.ShouldBindJSON(&movieID); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", "body must be a JSON string")
		return
	}

	matched, err := c.PlaylistUsecase.AddMovie(ctx.Request.Context(), id, movieID)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if matched == 0 {
		log.Debug().Str("id", id.Hex()).Msg("add movie matched no playlist")
	}

	ctx.Status(http.StatusNoContent)
}

// Delete removes the playlist with the given id. Deleting an id that
// matches nothing is still a 204.
func (c *PlaylistController) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id must be a 24-character hex string")
		return
	}

	deleted, err := c.PlaylistUsecase.Delete(ctx.Request.Context(), id)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if deleted == 0 {
		log.Debug().Str("id", id.Hex()).Msg("delete matched no playlist")
	}

	ctx.Status(http.StatusNoContent)
}
