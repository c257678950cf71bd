package httpserver

import (
	"github.com/dmitrijs2005/diary/internal/validation"
	"github.com/invopop/jsonschema"
)

// JSONSchemaExtend copies the shared length rules into the schema.
func (CreateEntryRequest) JSONSchemaExtend(s *jsonschema.Schema) {
	applyRules(s)
}

func (UpdateEntryRequest) JSONSchemaExtend(s *jsonschema.Schema) {
	applyRules(s)
}

func applyRules(s *jsonschema.Schema) {
	if s.Properties == nil {
		return
	}
	for _, rule := range validation.Rules {
		prop, ok := s.Properties.Get(rule.Field)
		if !ok {
			continue
		}
		minLen, maxLen := uint64(rule.Min), uint64(rule.Max)
		prop.MinLength = &minLen
		prop.MaxLength = &maxLen
	}
}

// EntrySchemas is served at GET /entries/schema.
type EntrySchemas struct {
	Create *jsonschema.Schema `json:"create"`
	Update *jsonschema.Schema `json:"update"`
	Entry  *jsonschema.Schema `json:"entry"`
}

func buildSchemas() EntrySchemas {
	r := &jsonschema.Reflector{DoNotReference: true}
	return EntrySchemas{
		Create: r.Reflect(&CreateEntryRequest{}),
		Update: r.Reflect(&UpdateEntryRequest{}),
		Entry:  r.Reflect(&EntryResponse{}),
	}
}
