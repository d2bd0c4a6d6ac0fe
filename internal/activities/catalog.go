package activities

import (
	"bytes"
	"encoding/json"
)

// Catalog is a point-in-time copy of the registry that keeps activity
// order. It encodes as a JSON object whose keys follow Names.
type Catalog struct {
	Names      []string
	Activities map[string]Activity
}

// MarshalJSON writes the activities as one object in Names order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.Activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
