package constants

const (
	// ContextKeyUserID is the gin context key the identity middleware
	// stores the acting user's id under.
	ContextKeyUserID = "user_id"

	// SessionKeyUserID is the session key an auth layer may set to
	// override the default principal.
	SessionKeyUserID = "user_id"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "healthlog_session"

	// DefaultEntryPageSize is the entry list page size when the caller
	// does not pass a limit.
	DefaultEntryPageSize = 10
)
