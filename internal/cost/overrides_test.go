package cost

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOverrides_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var o Overrides
	err := json.Unmarshal([]byte(`{"vaccineProcurement": 10000, "legal": "2500.5", "monitoring": "abc", "communication": null}`), &o)
	require.NoError(t, err)

	assert.Equal(t, "10000", o["vaccineProcurement"])
	assert.Equal(t, "2500.5", o["legal"])
	assert.Equal(t, "abc", o["monitoring"])
	assert.Equal(t, "", o["communication"])
}

func TestOverrides_UnmarshalJSON_NotObject(t *testing.T) {
	t.Parallel()
	var o Overrides
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &o))
}

func TestOverrides_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Overrides Overrides `yaml:"overrides"`
	}
	err := yaml.Unmarshal([]byte("overrides:\n  vaccineProcurement: 10000\n  legal: twelve\n"), &doc)
	require.NoError(t, err)
	assert.Equal(t, Overrides{"vaccineProcurement": "10000", "legal": "twelve"}, doc.Overrides)

	err = yaml.Unmarshal([]byte("overrides: [1, 2]\n"), &doc)
	assert.Error(t, err)
}

func TestOverrides_NullMeansNotSupplied(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(testRates(), "")

	var o Overrides
	require.NoError(t, json.Unmarshal([]byte(`{"communication": null}`), &o))

	in := testInput()
	in.Overrides = o
	got, err := calc.CostBenefit(in)
	require.NoError(t, err)
	assert.Empty(t, got.Rejected)
	assert.Equal(t, 15000.0, got.FixedComponents[Communication])
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()
	got := ParseOverrides(map[string]string{" legal ": "1", "monitoring": "2"})
	assert.Equal(t, Overrides{"legal": "1", "monitoring": "2"}, got)
}
