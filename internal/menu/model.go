// Package menu implements the catalog store: the list of menu items and the
// list of category names, persisted together as one JSON snapshot.
package menu

// Item is a single menu entry. Category is a soft reference by name into the
// category list; deleting a category clears the field instead of deleting
// the item.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Available   bool     `json:"available"`
	Ingredients []string `json:"ingredients"`
}

// State is the persisted shape of the catalog.
type State struct {
	Items      []Item   `json:"items"`
	Categories []string `json:"categories"`
}

// Stats summarizes the catalog for the dashboard.
type Stats struct {
	TotalItems      int `json:"totalItems"`
	TotalCategories int `json:"totalCategories"`
}

func defaultState() State {
	return State{Items: []Item{}, Categories: []string{}}
}
