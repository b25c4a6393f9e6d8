package constants

const (
	// ContextKeyUserID is the gin context key holding the resolved caller identity.
	ContextKeyUserID = "user_id"

	// HeaderUserID carries the caller's user ID. There is no authentication
	// layer; the header is trusted as-is.
	HeaderUserID = "X-User-ID"

	// DefaultUserID is assumed when a request carries no identity.
	DefaultUserID uint64 = 1

	// DefaultMessageLimit bounds message history when no limit is given.
	DefaultMessageLimit = 100
	// MaxMessageLimit is the hard cap on a single message history page.
	MaxMessageLimit = 500

	// Skill progress bounds (percent).
	MinProgress = 0
	MaxProgress = 100
)
