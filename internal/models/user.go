package models

import (
	"fmt"

	"fintrack/internal/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"` // never serialized
	Role     string             `bson:"role" json:"role"`
	Base     `bson:",inline"`
}

func NewUser(username, password, role string) *User {
	return &User{
		Username: username,
		Password: password,
		Role:     role,
		Base:     NewBase(),
	}
}

// UserSummary is the public projection of a user document.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Role:     u.Role,
	}
}

// SummaryFromDocument projects a raw user document. Documents written through the
// bulk endpoints carry no schema, so non-string values are formatted as text and
// missing fields become empty strings.
func SummaryFromDocument(doc bson.M) UserSummary {
	return UserSummary{
		ID:       idString(doc[constants.FieldID]),
		Username: stringField(doc[constants.FieldUsername]),
		Role:     stringField(doc[constants.FieldRole]),
	}
}

// WithoutPassword returns a shallow copy of doc minus the password field.
func WithoutPassword(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == constants.FieldPassword {
			continue
		}
		out[k] = v
	}
	return out
}

func idString(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return stringField(v)
}

func stringField(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
