package repository

import (
	"context"
	"fmt"

	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type playlistRepository struct {
	db         mongo.Database
	collection string
}

func NewPlaylistRepository(db mongo.Database, collection string) domain.PlaylistRepository {
	return &playlistRepository{
		db:         db,
		collection: collection,
	}
}

func (r *playlistRepository) Fetch(ctx context.Context) ([]domain.Playlist, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlists: %w", err)
	}

	playlists := make([]domain.Playlist, 0)
	if err = cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}

	return playlists, nil
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	coll := r.db.Collection(r.collection)

	insertedID, err := coll.InsertOne(ctx, playlist)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	if oid, ok := insertedID.(primitive.ObjectID); ok {
		playlist.ID = oid
	}

	return nil
}

func (r *playlistRepository) AddMovie(ctx context.Context, id primitive.ObjectID, movieID string) (int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{"_id": id}
	update := bson.M{"$addToSet": bson.M{"items": movieID}}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to add movie to playlist: %w", err)
	}

	return result.MatchedCount, nil
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	coll := r.db.Collection(r.collection)

	deletedCount, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete playlist: %w", err)
	}

	return deletedCount, nil
}
