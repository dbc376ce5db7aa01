package catalog

import "strings"

// Filter returns the subset of products visible for the given category and
// search query, preserving the input order.
//
// A category of "all" (or empty) matches every product; anything else must
// equal the product category exactly. A non-empty query matches products
// whose name or description contains it as a case-insensitive substring. The
// query is not trimmed: whitespace participates as a literal substring. Both
// conditions must hold.
func Filter(products []Product, category, query string) []Product {
	result := make([]Product, 0, len(products))

	lowered := strings.ToLower(query)

	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if lowered != "" &&
			!strings.Contains(strings.ToLower(p.Name), lowered) &&
			!strings.Contains(strings.ToLower(p.Description), lowered) {
			continue
		}
		result = append(result, p)
	}

	return result
}
