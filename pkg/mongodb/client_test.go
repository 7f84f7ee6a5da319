package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSupportsTransactions(t *testing.T) {
	timeout := int64(30)

	testCases := []struct {
		name     string
		hello    helloResult
		expected bool
	}{
		{name: "standalone", hello: helloResult{LogicalSessionTimeoutMinutes: &timeout}, expected: false},
		{name: "replica set member", hello: helloResult{SetName: "rs0", LogicalSessionTimeoutMinutes: &timeout}, expected: true},
		{name: "mongos", hello: helloResult{Msg: "isdbgrid", LogicalSessionTimeoutMinutes: &timeout}, expected: true},
		{name: "replica set without sessions", hello: helloResult{SetName: "rs0"}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, supportsTransactions(tc.hello))
		})
	}
}

func TestMongoDBClient(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ping succeeds", func(mt *mtest.T) {
		client := NewMongoDBClient(mt.Client, "fintrack", false)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, client.Ping(context.Background()))
	})

	mt.Run("ping surfaces server errors", func(mt *mtest.T) {
		client := NewMongoDBClient(mt.Client, "fintrack", false)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "command ping requires authentication",
			Name:    "Unauthorized",
		}))

		err := client.Ping(context.Background())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "requires authentication")
	})

	mt.Run("ensure collection creates it", func(mt *mtest.T) {
		client := NewMongoDBClient(mt.Client, "fintrack", false)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, client.EnsureCollection(context.Background(), "categories"))
	})

	mt.Run("ensure collection tolerates existing namespace", func(mt *mtest.T) {
		client := NewMongoDBClient(mt.Client, "fintrack", false)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    48,
			Message: "Collection fintrack.categories already exists.",
			Name:    "NamespaceExists",
		}))

		require.NoError(mt, client.EnsureCollection(context.Background(), "categories"))
	})

	mt.Run("ensure collection surfaces other errors", func(mt *mtest.T) {
		client := NewMongoDBClient(mt.Client, "fintrack", false)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized on fintrack to execute command",
			Name:    "Unauthorized",
		}))

		assert.Error(mt, client.EnsureCollection(context.Background(), "categories"))
	})

	mt.Run("collection lookup uses configured database", func(mt *mtest.T) {
		client := NewMongoDBClient(mt.Client, "fintrack", true)

		coll := client.GetCollectionByName("transactions")
		assert.Equal(mt, "transactions", coll.Name())
		assert.Equal(mt, "fintrack", coll.Database().Name())
		assert.True(mt, client.SupportsTransactions())
	})
}
