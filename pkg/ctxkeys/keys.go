// Package ctxkeys defines the keys under which middleware stores request
// identity on the gin context.
package ctxkeys

// Key is a typed context key to prevent collisions.
type Key string

const (
	KeyUserID    Key = "user_id"
	KeyEmail     Key = "email"
	KeyRole      Key = "role"
	KeyAuthType  Key = "auth_type"
	KeyRequestID Key = "request_id"
)
