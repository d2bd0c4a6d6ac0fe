package activities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Chess Club",
		"Programming Class",
		"Gym Class",
		"Basketball Team",
		"Tennis Club",
		"Art Studio",
		"Drama Club",
		"Debate Team",
		"Science Club",
	}, seed.Names())

	all := seed.Activities()
	require.Len(t, all, 9)

	assert.Equal(t, Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}, all["Chess Club"])

	assert.Equal(t, "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", all["Gym Class"].Schedule)
	assert.Equal(t, 30, all["Gym Class"].MaxParticipants)
	assert.Equal(t, []string{"isabella@mergington.edu", "noah@mergington.edu"}, all["Science Club"].Participants)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty document", ""},
		{"not a mapping", "- Chess Club\n- Art Studio\n"},
		{"malformed yaml", "Chess Club: [\n"},
		{
			name: "zero capacity",
			yaml: "Chess Club:\n  description: x\n  schedule: y\n  max_participants: 0\n",
		},
		{
			name: "duplicate participant",
			yaml: "Chess Club:\n  max_participants: 5\n  participants: [a@x, a@x]\n",
		},
		{
			name: "duplicate activity",
			yaml: "Chess Club:\n  max_participants: 5\nChess Club:\n  max_participants: 6\n",
		},
		{
			name: "wrong field type",
			yaml: "Chess Club:\n  max_participants: lots\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestParseSeed_NoParticipants(t *testing.T) {
	seed, err := ParseSeed([]byte("Robotics:\n  description: Build robots\n  schedule: Saturdays\n  max_participants: 8\n"))
	require.NoError(t, err)

	robotics := seed.Activities()["Robotics"]
	assert.NotNil(t, robotics.Participants)
	assert.Empty(t, robotics.Participants)
}

func TestParseSeed_OverCapacityAllowed(t *testing.T) {
	_, err := ParseSeed([]byte("Tiny:\n  max_participants: 1\n  participants: [a@x, b@x]\n"))
	assert.NoError(t, err)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := "Robotics:\n  description: Build robots\n  schedule: Saturdays\n  max_participants: 8\n  participants: [ada@mergington.edu]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	seed, err := LoadSeed(path)
	require.NoError(t, err)

	reg := NewRegistry(seed)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []string{"Robotics"}, reg.Names())
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
