package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input       string
		expected    Category
		expectError bool
	}{
		{input: "food", expected: CategoryFood},
		{input: "  Transport ", expected: CategoryTransport},
		{input: "RENT", expected: CategoryRent},
		{input: "other", expected: CategoryOther},
		{input: "groceries", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseCategory(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "food, transport, rent, bills, health, other")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Food", CategoryFood.Label())
	assert.Equal(t, "Bills", CategoryBills.Label())
	assert.Equal(t, "", Category("").Label())
}

func TestAllCategories_OtherIsLast(t *testing.T) {
	all := AllCategories()
	require.Len(t, all, 6)
	assert.Equal(t, CategoryOther, all[len(all)-1])
	assert.Equal(t, CategoryOther, DefaultCategory)
}
