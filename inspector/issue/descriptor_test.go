package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	descriptor := registry.Lookup(302000)
	require.NotNil(t, descriptor)
	assert.Equal(t, "Resources folder asset & dependencies", descriptor.Description)
	assert.Equal(t, "BuildSize", descriptor.Area)
	assert.Equal(t, SeverityInfo, descriptor.Severity)
	assert.Empty(t, descriptor.Call)

	assert.Nil(t, registry.Lookup(-1))
	for _, candidate := range registry.CallDescriptors() {
		assert.NotEmpty(t, candidate.Call, candidate.ID)
	}
	assert.True(t, registry.Lookup(101003).Critical)
}

func TestRegistry_Load(t *testing.T) {
	registry := NewRegistry(&Descriptor{ID: 1, Description: "first"})
	err := registry.Load([]byte(`
- id: 1
  description: replaced
  area: CPU
  severity: error
- id: 2
  description: second
  area: GPU
`))
	require.NoError(t, err)
	assert.Len(t, registry.Descriptors(), 2)
	assert.Equal(t, "replaced", registry.Lookup(1).Description)
	assert.Equal(t, SeverityError, registry.Lookup(1).Severity)
	assert.Equal(t, SeverityInfo, registry.Lookup(2).Severity)

	assert.Error(t, registry.Load([]byte(`- id: 3
  severity: loud`)))
}

func TestSeverity_Text(t *testing.T) {
	for _, severity := range []Severity{SeverityDefault, SeverityError, SeverityWarning, SeverityInfo, SeverityNone, SeverityHidden} {
		text, err := severity.MarshalText()
		require.NoError(t, err)
		var decoded Severity
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, severity, decoded)
	}
	assert.Equal(t, "Unknown", Severity(99).String())
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory("code")
	require.NoError(t, err)
	assert.Equal(t, Code, category)
	_, err = ParseCategory("sound")
	assert.Error(t, err)
	assert.Equal(t, "ShaderVariants", ShaderVariants.String())
}
