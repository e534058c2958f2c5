package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/mocks"
	"github.com/hurricanemark/SchoolApp.mongo.API/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlaylistUsecase_Fetch(t *testing.T) {
	mockRepo := &mocks.PlaylistRepository{}

	expected := []domain.Playlist{{ID: primitive.NewObjectID(), Username: "alice"}}
	mockRepo.On("Fetch", mock.Anything).Return(expected, nil)

	uc := usecase.NewPlaylistUsecase(mockRepo, time.Second*2)

	playlists, err := uc.Fetch(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, playlists)
	mockRepo.AssertExpectations(t)
}

func TestPlaylistUsecase_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := &mocks.PlaylistRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Playlist")).Return(nil)

		uc := usecase.NewPlaylistUsecase(mockRepo, time.Second*2)

		playlist := &domain.Playlist{Username: "alice", MovieIds: []string{"m1"}}
		err := uc.Create(context.Background(), playlist)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil movie ids become an empty list", func(t *testing.T) {
		mockRepo := &mocks.PlaylistRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Playlist")).Return(nil)

		uc := usecase.NewPlaylistUsecase(mockRepo, time.Second*2)

		playlist := &domain.Playlist{Username: "alice"}
		err := uc.Create(context.Background(), playlist)

		assert.NoError(t, err)
		assert.NotNil(t, playlist.MovieIds)
		assert.Len(t, playlist.MovieIds, 0)
	})

	t.Run("repository error is passed through", func(t *testing.T) {
		mockRepo := &mocks.PlaylistRepository{}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Playlist")).Return(errors.New("unexpected"))

		uc := usecase.NewPlaylistUsecase(mockRepo, time.Second*2)

		err := uc.Create(context.Background(), &domain.Playlist{Username: "alice"})

		assert.Error(t, err)
	})
}

func TestPlaylistUsecase_AddMovie(t *testing.T) {
	mockRepo := &mocks.PlaylistRepository{}

	id := primitive.NewObjectID()
	mockRepo.On("AddMovie", mock.Anything, id, "m42").Return(int64(1), nil)

	uc := usecase.NewPlaylistUsecase(mockRepo, time.Second*2)

	matched, err := uc.AddMovie(context.Background(), id, "m42")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	mockRepo.AssertExpectations(t)
}

func TestPlaylistUsecase_Delete(t *testing.T) {
	mockRepo := &mocks.PlaylistRepository{}

	id := primitive.NewObjectID()
	mockRepo.On("Delete", mock.Anything, id).Return(int64(0), nil)

	uc := usecase.NewPlaylistUsecase(mockRepo, time.Second*2)

	deleted, err := uc.Delete(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	mockRepo.AssertExpectations(t)
}
