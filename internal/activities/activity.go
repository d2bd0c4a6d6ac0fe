// Package activities holds the in-memory registry of extracurricular
// activities and their participant rosters.
package activities

// Email identifies a participant. It is accepted verbatim: no format
// validation, trimming or case folding is applied, and the empty string
// is a valid value.
type Email string

// Activity is a single extracurricular offering.
//
// MaxParticipants is informational. Signup does not check it.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// SpotsLeft returns how many places remain before MaxParticipants is
// reached. It can be negative when a roster exceeds its capacity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Has reports whether email is on the roster.
func (a Activity) Has(email Email) bool {
	return a.indexOf(email) >= 0
}

func (a Activity) indexOf(email Email) int {
	for i, p := range a.Participants {
		if p == string(email) {
			return i
		}
	}
	return -1
}

// clone returns a copy that shares no backing array with a.
// Participants is never nil so it encodes as [] rather than null.
func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// Confirmation is returned by successful roster changes.
type Confirmation struct {
	Message string `json:"message"`
}
