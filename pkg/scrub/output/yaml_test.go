package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLFormatter{}).Format(&buf, sampleReport()))

	var out yamlOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "/home/user/project", out.Root)
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(1), out.Summary.DirsDeleted)
	assert.Equal(t, "3.0 KB", out.Summary.SpaceFreedHuman)
}
