package models

// Drink is an immutable catalog entry with a single price point.
type Drink struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
	Size        string   `json:"size"`
	Available   bool     `json:"available"`
	Tags        []string `json:"tags,omitempty"`
}
