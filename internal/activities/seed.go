package activities

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeedYAML []byte

// Seed is an immutable, validated activity dataset. A Registry is built
// from a Seed and returns to it on Reset.
type Seed struct {
	order      []string
	activities map[string]Activity
}

// DefaultSeed returns the built-in dataset of nine activities.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeedYAML)
}

// LoadSeed reads a seed dataset from a YAML file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed decodes a YAML mapping of activity name to record. Document
// order is preserved.
func ParseSeed(data []byte) (*Seed, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSeed)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of activity names", ErrInvalidSeed, root.Line)
	}

	seed := &Seed{activities: make(map[string]Activity, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		name := key.Value
		if name == "" {
			return nil, fmt.Errorf("%w: line %d: empty activity name", ErrInvalidSeed, key.Line)
		}
		if _, dup := seed.activities[name]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate activity %q", ErrInvalidSeed, key.Line, name)
		}

		var a Activity
		if err := value.Decode(&a); err != nil {
			return nil, fmt.Errorf("%w: activity %q: %v", ErrInvalidSeed, name, err)
		}
		if err := validateActivity(name, a); err != nil {
			return nil, err
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}

		seed.order = append(seed.order, name)
		seed.activities[name] = a
	}

	return seed, nil
}

func validateActivity(name string, a Activity) error {
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("%w: activity %q: max_participants must be positive, got %d",
			ErrInvalidSeed, name, a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: activity %q: duplicate participant %q", ErrInvalidSeed, name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Names returns activity names in document order.
func (s *Seed) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Activities returns a copy of the dataset keyed by name.
func (s *Seed) Activities() map[string]Activity {
	out := make(map[string]Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.clone()
	}
	return out
}
