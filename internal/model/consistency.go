package model

// Consistency levels band the per-day completion count for rendering. The
// count itself stays the exact distinct-completed-goal number; the level is
// purely a presentation bucket.
const (
	LevelNone   = "none"   // 0 completions
	LevelLow    = "low"    // 1
	LevelMedium = "medium" // 2-3
	LevelHigh   = "high"   // 4+
)

// ConsistencyPoint is one cell of the contribution graph.
type ConsistencyPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
	Level string `json:"level"`
}

// LevelForCount maps a per-day completion count to its display band.
func LevelForCount(count int) string {
	switch {
	case count <= 0:
		return LevelNone
	case count == 1:
		return LevelLow
	case count <= 3:
		return LevelMedium
	default:
		return LevelHigh
	}
}
