package admin

import (
	"time"

	"github.com/gofrs/uuid"
)

type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Dashboard carries the entity counts shown on the admin landing page.
type Dashboard struct {
	ProductsCount  int `json:"products_count" db:"products_count"`
	OrdersCount    int `json:"orders_count" db:"orders_count"`
	CustomersCount int `json:"customers_count" db:"customers_count"`
}

// CustomerSummary is the customer slice embedded in admin order listings.
type CustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderReportItem struct {
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
}

type OrderReport struct {
	ID          uuid.UUID         `json:"id"`
	CustomerID  uuid.UUID         `json:"customer_id"`
	TotalAmount float64           `json:"total_amount"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	Customer    CustomerSummary   `json:"customer"`
	Items       []OrderReportItem `json:"items"`
}

type CustomerRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
