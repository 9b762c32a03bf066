package models

// Course represents a course in the catalog.
type Course struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"` // Nullable
	Level       string  `json:"level"`
	Duration    int     `json:"duration"` // Hours
}
