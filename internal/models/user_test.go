package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSummaryFromDocument(t *testing.T) {
	oid := primitive.NewObjectID()

	testCases := []struct {
		name     string
		doc      bson.M
		expected UserSummary
	}{
		{
			name:     "well formed user",
			doc:      bson.M{"_id": oid, "username": "alice", "password": "p1", "role": "user"},
			expected: UserSummary{ID: oid.Hex(), Username: "alice", Role: "user"},
		},
		{
			name:     "missing fields",
			doc:      bson.M{"_id": oid},
			expected: UserSummary{ID: oid.Hex()},
		},
		{
			name:     "non string values",
			doc:      bson.M{"_id": "legacy-id", "username": int32(42), "role": true},
			expected: UserSummary{ID: "legacy-id", Username: "42", Role: "true"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SummaryFromDocument(tc.doc))
		})
	}
}

func TestWithoutPassword(t *testing.T) {
	doc := bson.M{"_id": primitive.NewObjectID(), "username": "bob", "password": "secret", "theme": "dark"}

	out := WithoutPassword(doc)

	assert.NotContains(t, out, "password")
	assert.Equal(t, "bob", out["username"])
	assert.Equal(t, "dark", out["theme"])
	assert.Contains(t, doc, "password", "source document must not be modified")
}

func TestNewUserSetsTimestamps(t *testing.T) {
	user := NewUser("carol", "hash", "admin")

	assert.True(t, user.ID.IsZero())
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.Equal(t, UserSummary{ID: user.ID.Hex(), Username: "carol", Role: "admin"}, user.Summary())
}
