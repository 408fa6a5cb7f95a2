package activity

// DefaultRecentLimit is how many entries RecentActivity returns by default.
const DefaultRecentLimit = 5

// Filter narrows a project's logs. Empty fields match everything.
type Filter struct {
	// Keyword is matched case-insensitively against the log text.
	Keyword string
	// Date is a prefix of the RFC 3339 timestamp, e.g. "2025-06" or "2025-06-01".
	Date string
	Tag  string
}
