package usecase

import (
	"context"
	"time"

	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type playlistUsecase struct {
	playlistRepository domain.PlaylistRepository
	contextTimeout     time.Duration
}

func NewPlaylistUsecase(playlistRepository domain.PlaylistRepository, timeout time.Duration) domain.PlaylistUsecase {
	return &playlistUsecase{
		playlistRepository: playlistRepository,
		contextTimeout:     timeout,
	}
}

func (pu *playlistUsecase) Fetch(ctx context.Context) ([]domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.playlistRepository.Fetch(ctx)
}

func (pu *playlistUsecase) Create(ctx context.Context, playlist *domain.Playlist) error {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	if playlist.MovieIds == nil {
		playlist.MovieIds = make([]string, 0)
	}

	return pu.playlistRepository.Create(ctx, playlist)
}

func (pu *playlistUsecase) AddMovie(ctx context.Context, id primitive.ObjectID, movieID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.playlistRepository.AddMovie(ctx, id, movieID)
}

func (pu *playlistUsecase) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.playlistRepository.Delete(ctx, id)
}
