package domain

import "time"

// WindowLabelRedo is the sentinel window past the last configured bracket:
// no touch-up discount applies, a full first-time treatment is implied.
const WindowLabelRedo = "重新施作"

// TouchupWindow is one bracket of the studio's touch-up pricing schedule:
// elapsed months up to and including MaxMonths price as Label.
type TouchupWindow struct {
	MaxMonths int
	Label     string
}

// DefaultTouchupWindows is the studio's standard schedule. The labels must
// match the TimeRange texts the studio writes into its touch-up catalog
// entries (containment matching tolerates richer catalog labels).
// Deployments can override the table via configuration.
var DefaultTouchupWindows = []TouchupWindow{
	{MaxMonths: 3, Label: "3個月內"},
	{MaxMonths: 6, Label: "半年內"},
	{MaxMonths: 12, Label: "一年內"},
	{MaxMonths: 18, Label: "一年半內"},
	{MaxMonths: 24, Label: "兩年內"},
}

// DefaultTouchupCategories are the treatment categories the studio tracks
// touch-up history for. Overridable via configuration.
var DefaultTouchupCategories = []string{"霧眉", "霧唇"}

// ResolvedTouchup is the outcome of a touch-up price resolution for one
// category. Constructed per query, never persisted.
type ResolvedTouchup struct {
	Category      string
	LastVisitDate time.Time
	ElapsedMonths int
	MatchedPrice  *int64 // nil when no catalog entry prices the window
	WindowLabel   string
}

// HasPrice returns true when a catalog entry priced the computed window
func (r *ResolvedTouchup) HasPrice() bool {
	return r.MatchedPrice != nil
}
