package constants

// Collection names
const (
	CollectionUsers        = "users"
	CollectionCategories   = "categories"
	CollectionTransactions = "transactions"
)

// Collections lists every collection created by database initialization.
var Collections = []string{
	CollectionUsers,
	CollectionCategories,
	CollectionTransactions,
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Document field names that the server interprets.
const (
	FieldID       = "_id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
)
