package cost

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// UnmarshalJSON accepts both string and numeric override values. Values are
// kept as raw text so that parse failures surface as rejected overrides
// rather than as decode errors.
func (o *Overrides) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return eris.Wrap(err, "overrides: decode")
	}
	out := make(Overrides, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		out[k] = strings.TrimSpace(string(v))
	}
	*o = out
	return nil
}

// UnmarshalYAML keeps each scalar's source text.
func (o *Overrides) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return eris.Errorf("overrides: expected a mapping, line %d", n.Line)
	}
	out := make(Overrides, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out[n.Content[i].Value] = n.Content[i+1].Value
	}
	*o = out
	return nil
}

// ParseOverrides builds Overrides from key=value pairs as given on the
// command line.
func ParseOverrides(pairs map[string]string) Overrides {
	out := make(Overrides, len(pairs))
	for k, v := range pairs {
		out[strings.TrimSpace(k)] = v
	}
	return out
}
