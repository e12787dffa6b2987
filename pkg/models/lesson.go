package models

// Lesson groups words into an ordered course step
type Lesson struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Order       int     `json:"order" db:"lesson_order"` // Display position, unique
}
