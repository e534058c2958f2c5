package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist is stored one document per playlist. The movie id list lives
// under the "items" field on the wire to the store while staying
// "movieIds" in JSON.
type Playlist struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	MovieIds []string           `bson:"items" json:"movieIds"`
}

type PlaylistRepository interface {
	Fetch(ctx context.Context) ([]Playlist, error)
	Create(ctx context.Context, playlist *Playlist) error
	// AddMovie adds movieID to the playlist's items with set semantics.
	// A zero matched count means no document had that id; it is not an error.
	AddMovie(ctx context.Context, id primitive.ObjectID, movieID string) (int64, error)
	// Delete returns the number of documents removed (0 or 1).
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type PlaylistUsecase interface {
	Fetch(ctx context.Context) ([]Playlist, error)
	Create(ctx context.Context, playlist *Playlist) error
	AddMovie(ctx context.Context, id primitive.ObjectID, movieID string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
