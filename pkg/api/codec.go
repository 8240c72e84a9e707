package api

import "encoding/json"

// Codec marshals plain Go messages as JSON. It registers under the name
// "json", so Connect serves it as application/json (and
// application/connect+json for streams).
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
