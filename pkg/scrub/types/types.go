// Package types provides shared data types for the scrub cleanup tool,
// along with size formatting helpers used by the sweeper and output
// formatters.
package types

import "fmt"

// Size constants for base-1024 units.
const (
	KB int64 = 1024
	MB int64 = 1024 * KB
	GB int64 = 1024 * MB
)

// FormatSize converts a size in bytes to a human-readable string using
// base-1024 scaling with one decimal place. Units are B, KB, MB, GB; sizes
// of a terabyte or more stay in GB.
//
// Examples:
//   - FormatSize(0) returns "0.0 B"
//   - FormatSize(1024) returns "1.0 KB"
//   - FormatSize(1536*1024) returns "1.5 MB"
func FormatSize(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, units[unit])
}
