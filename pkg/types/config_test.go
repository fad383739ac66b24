package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/yaml/v3"
)

// A config file written with the documented keys must populate
// RenderConfig; the CLI reads the same keys through viper, so the struct
// tags and the lookup keys have to agree.
func TestRenderConfigYAMLKeys(t *testing.T) {
	var cfg RenderConfig
	require.NoError(t, yaml.Unmarshal([]byte("dpi: 300\nquality: 80\n"), &cfg))

	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, 80, cfg.JPEGQuality)

	out, err := yaml.Marshal(RenderConfig{DPI: DefaultDPI, JPEGQuality: DefaultJPEGQuality})
	require.NoError(t, err)
	assert.Contains(t, string(out), "dpi: 200")
	assert.Contains(t, string(out), "quality: 95")
}
