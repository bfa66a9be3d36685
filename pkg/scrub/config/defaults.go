package config

// Default values for ambient settings. Classification rules are not
// configurable; these defaults cover only how the tool runs and reports.
const (
	// DefaultOutputFormat is the formatter used when none is requested.
	DefaultOutputFormat = "pretty"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultRetentionDays is how long cleanup history entries are kept.
	DefaultRetentionDays = 30
)
