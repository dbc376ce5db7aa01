package catalog

import (
	"time"

	"github.com/gofrs/uuid"
)

// CategoryAll is the filter value that disables category matching.
const CategoryAll = "all"

// Categories is the fixed set of product categories the shop sells.
var Categories = []string{"chicken", "mutton", "fish", "seafood", "eggs"}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	Stock       int       `json:"stock" db:"stock"`
	Image       string    `json:"image" db:"image"`
	Weight      string    `json:"weight,omitempty" db:"weight"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
