package ideas

import (
	"bytes"
	"encoding/json"
)

// Normalize reconciles the response shapes the service is known to emit into
// one ordered list:
//
//	{"ideas": [...]}  -> the wrapped list
//	[...]             -> the bare list
//	anything else     -> empty list
//
// An "ideas" key whose value is not an array also yields an empty list. The
// body must still be valid JSON; otherwise a *ShapeError is returned.
func Normalize(body []byte) ([]Idea, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, &ShapeError{Err: errInvalidJSON}
	}
	switch {
	case len(trimmed) > 0 && trimmed[0] == '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, &ShapeError{Err: err}
		}
		list, ok := wrapper["ideas"]
		if !ok {
			return []Idea{}, nil
		}
		return decodeList(list)
	case len(trimmed) > 0 && trimmed[0] == '[':
		return decodeList(trimmed)
	default:
		return []Idea{}, nil
	}
}

func decodeList(raw json.RawMessage) ([]Idea, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []Idea{}, nil
	}
	var out []Idea
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ShapeError{Err: err}
	}
	if out == nil {
		out = []Idea{}
	}
	return out, nil
}
