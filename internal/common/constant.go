// Package common contains constants shared by the dashboard client packages.
package common

// HTTP header names and values used on outbound API requests.
const (
	AuthorizationHeader = "Authorization"
	ContentTypeHeader   = "Content-Type"
	RequestIDHeader     = "X-Request-ID"
	ContentTypeJSON     = "application/json"
	BearerPrefix        = "Bearer "
)

// Default storage keys for the persisted session entries.
const (
	TokenKey = "auth_token"
	UserKey  = "user_data"
	RoleKey  = "user_role"
)
