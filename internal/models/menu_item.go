package models

type MenuItem struct {
	ID     int     `json:"id" mapstructure:"id"`
	Name   string  `json:"name" mapstructure:"name"`
	Price  float64 `json:"price" mapstructure:"price"`
	Rating float64 `json:"rating" mapstructure:"rating"`
}

// Category is a named, ordered group of menu items.
type Category struct {
	Name  string     `json:"name" mapstructure:"name"`
	Items []MenuItem `json:"items" mapstructure:"items"`
}

// MenuResponse is served by GET /api/menu.
type MenuResponse struct {
	Category string     `json:"category"`
	Query    string     `json:"query,omitempty"`
	Items    []MenuItem `json:"items"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Default    string   `json:"default"`
}
