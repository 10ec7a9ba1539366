package document

import (
	"bytes"
	"encoding/json"
)

// UnmarshalJSON decodes an entry, resolving tagged references inside
// Fields ({"asset": {...}} and {"entry": {...}} objects, and lists of
// either) into typed *Asset/*Entry values so field accessors work on
// wire-decoded documents.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string                     `json:"id"`
		ContentType string                     `json:"contentType"`
		Fields      map[string]json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.ID = raw.ID
	e.ContentType = raw.ContentType
	if raw.Fields == nil {
		e.Fields = nil
		return nil
	}

	e.Fields = make(map[string]any, len(raw.Fields))
	for name, value := range raw.Fields {
		e.Fields[name] = decodeFieldValue(value)
	}
	return nil
}

func decodeFieldValue(raw json.RawMessage) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '{':
		var ref struct {
			Asset *Asset `json:"asset"`
			Entry *Entry `json:"entry"`
		}
		if err := json.Unmarshal(trimmed, &ref); err == nil {
			if ref.Asset != nil {
				return ref.Asset
			}
			if ref.Entry != nil {
				return ref.Entry
			}
		}
		var m map[string]any
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil
		}
		return m
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, decodeFieldValue(item))
		}
		return out
	default:
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil
		}
		return v
	}
}
