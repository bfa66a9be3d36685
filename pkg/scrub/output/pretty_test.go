package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PrettyFormatter{}).Format(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Project Cleanup")
	assert.Contains(t, out, "/home/user/project/scratch.tmp")
	assert.Contains(t, out, "Deleted")
	assert.Contains(t, out, "3.0 KB")
}

func TestPrettyFormatter_DryRun(t *testing.T) {
	r := sampleReport()
	r.DryRun = true

	var buf bytes.Buffer
	require.NoError(t, (&PrettyFormatter{}).Format(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "DRY RUN")
	assert.Contains(t, out, "Would delete")
}

func TestPrettyFormatter_CleanTree(t *testing.T) {
	r := &Report{Root: "/tmp/x", Summary: Summary{SpaceFreedHuman: "0.0 B"}}

	var buf bytes.Buffer
	require.NoError(t, (&PrettyFormatter{}).Format(&buf, r))
	assert.Contains(t, buf.String(), "already clean")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "milliseconds", d: 250 * time.Millisecond, want: "250ms"},
		{name: "seconds", d: 2500 * time.Millisecond, want: "2.5s"},
		{name: "minutes", d: 95 * time.Second, want: "1m 35s"},
		{name: "hours", d: 62 * time.Minute, want: "1h 2m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}
