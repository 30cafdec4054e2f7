package services

const defaultLimit = 10

// clampLimit applies the default and the configured process-wide
// maximum to a caller-supplied page size.
func clampLimit(limit, max int) int {
	if limit < 1 {
		limit = defaultLimit
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}
