package tokenutil_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/internal/tokenutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "alice", Email: "alice@example.com"}

	token, err := tokenutil.CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	authorized, err := tokenutil.IsAuthorized(token, "secret")
	assert.NoError(t, err)
	assert.True(t, authorized)

	id, err := tokenutil.ExtractIDFromToken(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestExtractIDFromTokenWithoutIDClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "alice"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	id, err := tokenutil.ExtractIDFromToken(signed, "secret")
	assert.Error(t, err)
	assert.Empty(t, id)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "alice"}

	token, err := tokenutil.CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)

	authorized, err := tokenutil.IsAuthorized(token, "other-secret")
	assert.Error(t, err)
	assert.False(t, authorized)

	_, err = tokenutil.ExtractIDFromToken(token, "other-secret")
	assert.Error(t, err)
}
