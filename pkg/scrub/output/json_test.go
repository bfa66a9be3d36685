package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(&buf, sampleReport()))

	var out jsonOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "/home/user/project", out.Root)
	assert.False(t, out.DryRun)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "file", out.Items[0].Kind)
	assert.Equal(t, "directory", out.Items[1].Kind)
	assert.Equal(t, int64(1), out.Summary.FilesDeleted)
	assert.Equal(t, int64(3072), out.Summary.BytesReclaimed)
	assert.Equal(t, int64(42), out.Summary.ElapsedMS)
}

func TestJSONFormatter_EmptyItemsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(&buf, &Report{Root: "/x"}))

	// Items must serialize as [] rather than null for consumers.
	assert.Contains(t, buf.String(), `"items": []`)
}
