package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShivChilu/fresh-meat/internal/catalog"
)

func TestFilter(t *testing.T) {
	products := []catalog.Product{
		{Name: "Fresh Chicken Breast", Description: "Boneless and skinless", Category: "chicken"},
		{Name: "Mutton Curry Cut", Description: "Goat meat for curries", Category: "mutton"},
		{Name: "Rohu Fish", Description: "Fresh river fish, cleaned", Category: "fish"},
		{Name: "Tiger Prawns", Description: "Large fresh prawns", Category: "seafood"},
	}

	tests := []struct {
		name      string
		category  string
		query     string
		wantNames []string
	}{
		{
			name:      "all_and_empty_query_returns_everything_in_order",
			category:  "all",
			query:     "",
			wantNames: []string{"Fresh Chicken Breast", "Mutton Curry Cut", "Rohu Fish", "Tiger Prawns"},
		},
		{
			name:      "category_only",
			category:  "fish",
			query:     "",
			wantNames: []string{"Rohu Fish"},
		},
		{
			name:      "query_matches_name_case_insensitive",
			category:  "all",
			query:     "CHICKEN",
			wantNames: []string{"Fresh Chicken Breast"},
		},
		{
			name:      "query_matches_description",
			category:  "all",
			query:     "curries",
			wantNames: []string{"Mutton Curry Cut"},
		},
		{
			name:      "category_and_query_are_conjunctive",
			category:  "seafood",
			query:     "fresh",
			wantNames: []string{"Tiger Prawns"},
		},
		{
			name:      "query_excludes_wrong_category",
			category:  "mutton",
			query:     "fish",
			wantNames: []string{},
		},
		{
			name:      "whitespace_query_is_literal",
			category:  "all",
			query:     "river ",
			wantNames: []string{"Rohu Fish"},
		},
		{
			name:      "no_match",
			category:  "all",
			query:     "beef",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(products, tt.category, tt.query)
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := catalog.Filter(nil, "all", "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_DoesNotReorder(t *testing.T) {
	products := []catalog.Product{
		{Name: "b", Category: "chicken"},
		{Name: "a", Category: "chicken"},
		{Name: "c", Category: "chicken"},
	}

	got := catalog.Filter(products, "chicken", "")

	assert.Equal(t, products, got)
}
