package models

// LoginState tracks where a browser session is in its authentication
// lifecycle. Transitions only ever move forward within one session.
type LoginState int

const (
	StateUnauthenticated LoginState = iota
	StateAuthenticating
	StateAuthenticated
	StateFailed
)

func (s LoginState) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unauthenticated"
	}
}
