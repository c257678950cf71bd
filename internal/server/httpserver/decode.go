package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/diary/internal/server/services"
	"github.com/dmitrijs2005/diary/internal/validation"
)

const maxBodyBytes = 64 << 10

var errBadBody = errors.New("invalid request body")

// field is one decoded rule field. value is nil when the field was absent
// or null.
type field struct {
	value    *string
	mistyped bool
}

// decodeFields reads a JSON object and returns, per rule, the string value
// of the field or whether it held another JSON type.
func decodeFields(w http.ResponseWriter, r *http.Request) (map[string]field, error) {
	raw := map[string]json.RawMessage{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errBadBody
	}

	out := make(map[string]field, len(validation.Rules))
	for _, rule := range validation.Rules {
		v, ok := raw[rule.Field]
		if !ok || string(v) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			out[rule.Field] = field{mistyped: true}
			continue
		}
		out[rule.Field] = field{value: &s}
	}
	return out, nil
}

// typeErrors returns nil when no field is mistyped. Otherwise it reports
// the mistyped fields together with the violations check finds in the
// others, in rule order.
func typeErrors(fields map[string]field, check func(c *validation.Collector, r validation.Rule, v *string)) error {
	mistyped := false
	for _, f := range fields {
		mistyped = mistyped || f.mistyped
	}
	if !mistyped {
		return nil
	}

	var c validation.Collector
	for _, rule := range validation.Rules {
		f := fields[rule.Field]
		if f.mistyped {
			c.Add(rule.Field, rule.Label+" must be a string")
			continue
		}
		check(&c, rule, f.value)
	}
	return c.Err()
}

// decodeCreate parses a create body. Missing fields are passed on as empty
// strings so the service reports them as required.
func decodeCreate(w http.ResponseWriter, r *http.Request) (services.CreateEntryInput, error) {
	fields, err := decodeFields(w, r)
	if err != nil {
		return services.CreateEntryInput{}, err
	}
	err = typeErrors(fields, func(c *validation.Collector, rule validation.Rule, v *string) {
		s := ""
		if v != nil {
			s = *v
		}
		c.Required(rule, s)
	})
	if err != nil {
		return services.CreateEntryInput{}, err
	}

	var in services.CreateEntryInput
	if v := fields[validation.TopicRule.Field].value; v != nil {
		in.Topic = *v
	}
	if v := fields[validation.BodyRule.Field].value; v != nil {
		in.Body = *v
	}
	return in, nil
}

func decodeUpdate(w http.ResponseWriter, r *http.Request) (services.UpdateEntryInput, error) {
	fields, err := decodeFields(w, r)
	if err != nil {
		return services.UpdateEntryInput{}, err
	}
	err = typeErrors(fields, func(c *validation.Collector, rule validation.Rule, v *string) {
		c.Optional(rule, v)
	})
	if err != nil {
		return services.UpdateEntryInput{}, err
	}

	return services.UpdateEntryInput{
		Topic: fields[validation.TopicRule.Field].value,
		Body:  fields[validation.BodyRule.Field].value,
	}, nil
}
