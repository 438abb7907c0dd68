package constant

// File processing lifecycle. Transitions: NotProcessed|Updated -> Processing -> Processed|Error.
const (
	FileStatusNotProcessed = 0
	FileStatusProcessing   = 1
	FileStatusProcessed    = 2
	FileStatusUpdated      = 3
	FileStatusError        = 4
)

// Per-session analysis outcome.
const (
	SessionStatusError     = 0
	SessionStatusProcessed = 1
)

// Report kinds.
const (
	ReportKindDaily  = 1
	ReportKindWeekly = 2
)

// Scan interval bounds in seconds, enforced before a schedule config is persisted.
const (
	MinScanIntervalSeconds = 3600
	MaxScanIntervalSeconds = 43200
)
