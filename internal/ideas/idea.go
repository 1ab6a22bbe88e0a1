package ideas

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Field names used by the idea-generation service.
const (
	FieldName                   = "name"
	FieldTagline                = "tagline"
	FieldProblem                = "problem"
	FieldSolution               = "solution"
	FieldTargetMarket           = "target_market"
	FieldUniqueValueProposition = "unique_value_proposition"
	FieldBusinessModel          = "business_model"
)

// Request carries the two form fields sent to the service.
type Request struct {
	Industry        string `json:"industry"`
	TechnologyFocus string `json:"technology_focus"`
}

// Idea is one generated startup idea. Every known field is optional; a nil
// pointer means the service did not send it. Fields the client does not know
// about are kept verbatim in Extra.
type Idea struct {
	Name                   *string
	Tagline                *string
	Problem                *string
	Solution               *string
	TargetMarket           *string
	UniqueValueProposition *string
	BusinessModel          *string
	Extra                  map[string]json.RawMessage
}

func (i *Idea) slots() map[string]**string {
	return map[string]**string{
		FieldName:                   &i.Name,
		FieldTagline:                &i.Tagline,
		FieldProblem:                &i.Problem,
		FieldSolution:               &i.Solution,
		FieldTargetMarket:           &i.TargetMarket,
		FieldUniqueValueProposition: &i.UniqueValueProposition,
		FieldBusinessModel:          &i.BusinessModel,
	}
}

// Field reports the value of a known field and whether it carries text.
func (i Idea) Field(key string) (string, bool) {
	slot, ok := i.slots()[key]
	if !ok || *slot == nil {
		return "", false
	}
	value := **slot
	if strings.TrimSpace(value) == "" {
		return value, false
	}
	return value, true
}

// UnmarshalJSON accepts any JSON object. Known keys holding strings populate
// the typed fields; everything else lands in Extra. Non-object values decode
// to an empty Idea so list positions survive.
func (i *Idea) UnmarshalJSON(data []byte) error {
	*i = Idea{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	slots := i.slots()
	for key, value := range raw {
		if slot, ok := slots[key]; ok {
			var text string
			if err := json.Unmarshal(value, &text); err == nil {
				*slot = &text
				continue
			}
		}
		if i.Extra == nil {
			i.Extra = map[string]json.RawMessage{}
		}
		i.Extra[key] = value
	}
	return nil
}

// MarshalJSON writes the idea back in the service's wire shape.
func (i Idea) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.Extra)+7)
	for key, value := range i.Extra {
		out[key] = value
	}
	for key, slot := range i.slots() {
		if *slot != nil {
			out[key] = **slot
		}
	}
	return json.Marshal(out)
}
