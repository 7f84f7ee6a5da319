package constants

import "errors"

var (
	ErrMissingCredentials = errors.New("Username and password are required")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidUserID      = errors.New("Invalid user id")
)

// Status lines reported alongside health and initialization results.
const (
	MsgConnectionSuccessful = "MongoDB connection successful"
	MsgConnectionFailed     = "MongoDB connection failed"
	MsgDatabaseInitialized  = "Database initialized successfully"
	MsgDatabaseInitFailed   = "Database initialization failed"
)
