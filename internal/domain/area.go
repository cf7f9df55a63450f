package domain

// Area is a named campus region that groups places. Slug is its unique key.
type Area struct {
	Model
	Name        string `json:"name" db:"name"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description,omitempty" db:"description"`
}

var DefaultAreaNames = []string{"Keputih", "Mulyosari", "Gebang", "Manyar"}
