package cart

import (
	"math"

	"github.com/gofrs/uuid"

	"github.com/ShivChilu/fresh-meat/internal/catalog"
)

// LineItem is a point-in-time snapshot of a product inside a cart. The
// snapshot fields are captured when the product is first added and are never
// refreshed, even if the catalog entry changes afterwards.
type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Weight    string    `json:"weight,omitempty"`
	Quantity  int       `json:"quantity"`
}

// Cart holds the line items of one customer session in insertion order.
// At most one line item exists per product id.
//
// Mutations return a new Cart value; the receiver is never modified. This
// keeps every persisted snapshot complete and lets callers discard a failed
// update without repair work.
type Cart struct {
	Items []LineItem `json:"items"`
}

func (c Cart) clone() Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// Add increments the quantity for an already-present product, or appends a
// new line item with quantity 1 capturing the product's current price, name,
// image and weight.
func (c Cart) Add(p catalog.Product) Cart {
	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ProductID == p.ID {
			next.Items[i].Quantity++
			return next
		}
	}
	next.Items = append(next.Items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Weight:    p.Weight,
		Quantity:  1,
	})
	return next
}

// SetQuantity replaces the quantity of the line item for productID. A
// quantity below 1 removes the item. If no line item exists for productID
// the cart is returned unchanged (a no-op, not an error).
func (c Cart) SetQuantity(productID uuid.UUID, quantity int) Cart {
	if quantity < 1 {
		return c.Remove(productID)
	}
	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ProductID == productID {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return next
}

// Remove deletes the line item for productID. Removing an absent product is
// a no-op.
func (c Cart) Remove(productID uuid.UUID) Cart {
	next := Cart{Items: make([]LineItem, 0, len(c.Items))}
	for _, item := range c.Items {
		if item.ProductID != productID {
			next.Items = append(next.Items, item)
		}
	}
	return next
}

// Total is the exact sum of price × quantity over all line items. Rounding
// happens only at the display boundary, never here.
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// DisplayTotal is Total rounded to 2 decimal places for presentation.
func (c Cart) DisplayTotal() float64 {
	return math.Round(c.Total()*100) / 100
}

// Count is the number of distinct line items, not the summed quantity. The
// storefront uses it for the cart badge.
func (c Cart) Count() int {
	return len(c.Items)
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
