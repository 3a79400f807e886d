package denovo_api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "hg38", config.Build)
	assert.Equal(t, defaultInfo, config.Info)
	assert.Equal(t, []Interval{{10000, 2781479}, {155701382, 156030895}}, config.regions("chrX"))
	assert.Equal(t, []Interval{{10000, 2781479}, {56887902, 57217415}}, config.regions("Y"))
	assert.Empty(t, config.regions("chr1"))
}

func TestLoadConfigBuild(t *testing.T) {
	config, err := LoadConfig("", "hg19")
	require.NoError(t, err)
	assert.Equal(t, []Interval{{60000, 2699520}, {154931043, 155260560}}, config.regions("X"))

	_, err = LoadConfig("", "hg18")
	assert.ErrorContains(t, err, "unsupported build")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
build: hg19
pseudoautosomal:
  X:
    - [100, 200]
    - [1000, 2000]
info:
  - DP
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "hg19", config.Build)
	assert.Equal(t, []string{"DP"}, config.Info)
	assert.Equal(t, []Interval{{100, 200}, {1000, 2000}}, config.regions("chrX"))
	assert.Equal(t, []Interval{{10000, 2649520}, {59034049, 59373566}}, config.regions("chrY"))

	config, err = LoadConfig(path, "hg38")
	require.NoError(t, err)
	assert.Equal(t, "hg38", config.Build)
	assert.Equal(t, []Interval{{100, 200}, {1000, 2000}}, config.regions("chrX"))
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"one interval":     "pseudoautosomal:\n  chrX:\n    - [100, 200]\n",
		"reversed":         "pseudoautosomal:\n  chrX:\n    - [300, 200]\n    - [400, 500]\n",
		"three boundaries": "pseudoautosomal:\n  chrX:\n    - [100, 200, 300]\n    - [400, 500]\n",
		"not yaml":         "pseudoautosomal: [",
	}
	for name, content := range tests {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadConfig(path, "")
		assert.Error(t, err, name)
	}

	_, err := LoadConfig(filepath.Join(dir, "absent.yaml"), "")
	assert.Error(t, err)
}
