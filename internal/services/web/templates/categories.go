package templates

import "github.com/louisbranch/jobportal/internal/platform/icons"

// CategoryGridID is the element swapped by the lazy category load.
const CategoryGridID = "category-grid"

// CategoryTileView is one category tile.
type CategoryTileView struct {
	ID       string
	Name     string
	JobCount int
	Icon     icons.ID
}

// CategoryGridView is the resolved category grid state.
type CategoryGridView struct {
	Tiles []CategoryTileView
	// Error replaces the grid when set.
	Error string
}
