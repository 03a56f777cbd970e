package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 80

	// SidebarWidth is the expanded sidebar width in cells.
	SidebarWidth = 24

	// SidebarCollapsedWidth is the collapsed sidebar width in cells.
	SidebarCollapsedWidth = 4
)

// Display limits.
const (
	// MaxVisibleRecords limits history rows shown before scrolling.
	MaxVisibleRecords = 15

	// MaxVisibleToasts limits toasts rendered at once.
	MaxVisibleToasts = 4

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxProfileFieldLength is the maximum length of an edited profile field.
	MaxProfileFieldLength = 100

	// MaxPathLength is the maximum length of an entered video path.
	MaxPathLength = 250
)
