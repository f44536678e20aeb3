package detect

import (
	"testing"

	"Smart-Fridge-Backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeFood(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Whole Milk", "Dairy"},
		{"cheddar cheese", "Dairy"},
		{"baby carrots", "Vegetables"},
		{"Granny Smith Apple", "Fruits"},
		{"chicken thighs", "Meat"},
		{"smoked salmon", "Seafood"},
		{"orange juice", "Fruits"}, // "orange" matches before "juice"
		{"sparkling water", "Beverages"},
		{"leftover casserole", domain.CategoryOthers},
		{"", domain.CategoryOthers},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeFood(tt.name), "name %q", tt.name)
	}
}
