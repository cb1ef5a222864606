package dispatcher

import "fmt"

// Policy decides what happens when a question is submitted while another
// one is still in flight
type Policy string

const (
	// PolicyRace lets every request run; whichever resolves last is shown
	PolicyRace Policy = "race"
	// PolicyIgnorePending drops submissions while a request is in flight
	PolicyIgnorePending Policy = "ignore-pending"
	// PolicyCancelPrevious cancels the in-flight request and only ever
	// shows the latest submission
	PolicyCancelPrevious Policy = "cancel-previous"
)

// ParsePolicy validates s as a Policy
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyRace, PolicyIgnorePending, PolicyCancelPrevious:
		return p, nil
	}
	return "", fmt.Errorf("unknown overlap policy %q (want %s, %s or %s)",
		s, PolicyRace, PolicyIgnorePending, PolicyCancelPrevious)
}
