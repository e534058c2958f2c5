package repository_test

import (
	"context"
	"testing"

	"github.com/hurricanemark/SchoolApp.mongo.API/domain"
	"github.com/hurricanemark/SchoolApp.mongo.API/mocks"
	"github.com/hurricanemark/SchoolApp.mongo.API/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_Create(t *testing.T) {
	databaseMock := &mocks.Database{}
	collectionMock := &mocks.Collection{}

	oid := primitive.NewObjectID()
	user := &domain.User{Name: "alice", Email: "alice@example.com", Password: "hash"}

	databaseMock.On("Collection", domain.CollectionUser).Return(collectionMock)
	collectionMock.On("InsertOne", mock.Anything, user).Return(oid, nil)

	repo := repository.NewUserRepository(databaseMock, domain.CollectionUser)

	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, oid, user.ID)
	collectionMock.AssertExpectations(t)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	databaseMock := &mocks.Database{}
	collectionMock := &mocks.Collection{}
	singleResultMock := &mocks.SingleResult{}

	databaseMock.On("Collection", domain.CollectionUser).Return(collectionMock)
	collectionMock.On("FindOne", mock.Anything, bson.M{"email": "alice@example.com"}).Return(singleResultMock)
	singleResultMock.On("Decode", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*domain.User)
			user.Name = "alice"
			user.Email = "alice@example.com"
		}).
		Return(nil)

	repo := repository.NewUserRepository(databaseMock, domain.CollectionUser)

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	collectionMock.AssertExpectations(t)
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("malformed hex id fails without touching the store", func(t *testing.T) {
		databaseMock := &mocks.Database{}
		collectionMock := &mocks.Collection{}

		databaseMock.On("Collection", domain.CollectionUser).Return(collectionMock)

		repo := repository.NewUserRepository(databaseMock, domain.CollectionUser)

		_, err := repo.GetByID(context.Background(), "not-hex")

		assert.Error(t, err)
		collectionMock.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})

	t.Run("finds by object id", func(t *testing.T) {
		databaseMock := &mocks.Database{}
		collectionMock := &mocks.Collection{}
		singleResultMock := &mocks.SingleResult{}

		oid := primitive.NewObjectID()

		databaseMock.On("Collection", domain.CollectionUser).Return(collectionMock)
		collectionMock.On("FindOne", mock.Anything, bson.M{"_id": oid}).Return(singleResultMock)
		singleResultMock.On("Decode", mock.AnythingOfType("*domain.User")).Return(nil)

		repo := repository.NewUserRepository(databaseMock, domain.CollectionUser)

		_, err := repo.GetByID(context.Background(), oid.Hex())

		assert.NoError(t, err)
		collectionMock.AssertExpectations(t)
	})
}
