package session

// EventKind identifies a credential lifecycle transition.
type EventKind string

const (
	EventLoggedIn       EventKind = "logged_in"
	EventLoggedOut      EventKind = "logged_out"
	EventTokenRefreshed EventKind = "token_refreshed"
)

// Event is delivered to subscribers after the store has been updated.
type Event struct {
	Kind      EventKind
	UserID    string
	UserEmail string
}

// Listener receives credential lifecycle events. Callbacks run synchronously
// on the mutating goroutine and must not block.
type Listener func(Event)
