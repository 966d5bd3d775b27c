package model

// State is a US postal code (50 states plus DC).
type State string

// states lists the accepted codes in the order the select box shows them.
var states = []State{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var stateSet = func() map[State]struct{} {
	m := make(map[State]struct{}, len(states))
	for _, s := range states {
		m[s] = struct{}{}
	}
	return m
}()

// AllStates returns every accepted state code.
func AllStates() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// Valid reports whether s is an accepted postal code.
func (s State) Valid() bool {
	_, ok := stateSet[s]
	return ok
}
