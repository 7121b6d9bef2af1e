package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier()

	lines := classifier.Classify("Walmart Supercentre 123\nMilk 3.99\n\nTOTAL 6.49")
	assert.Len(t, lines, 4)

	assert.True(t, lines[0].Merchant)
	assert.False(t, lines[0].Total)

	assert.True(t, lines[1].Item)
	assert.Equal(t, "Milk", lines[1].ItemName)
	assert.Equal(t, 3.99, lines[1].ItemPrice)

	assert.False(t, lines[2].Merchant)
	assert.False(t, lines[2].Total)
	assert.False(t, lines[2].Item)

	assert.True(t, lines[3].Total)
	assert.True(t, lines[3].HasTotalAmount)
	assert.Equal(t, 6.49, lines[3].TotalAmount)
	assert.False(t, lines[3].Item, "total and item are mutually exclusive")
}

func TestClassifyMerchantFirstMatchOnly(t *testing.T) {
	lines := NewClassifier().Classify("Walmart\nCostco")
	assert.True(t, lines[0].Merchant)
	assert.False(t, lines[1].Merchant)
}

func TestClassifyLineCanBeMerchantAndItem(t *testing.T) {
	lines := NewClassifier().Classify("Poutine 12.50")
	assert.True(t, lines[0].Merchant)
	assert.True(t, lines[0].Item)
	assert.Equal(t, "Poutine", lines[0].ItemName)
}

func TestClassifyEmptyLinesCarryNoSignal(t *testing.T) {
	lines := NewClassifier().Classify("\n\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.False(t, line.Merchant)
		assert.False(t, line.Total)
		assert.False(t, line.Item)
	}
}

func TestDefaultMerchantRule(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"Too short", "abc", false},
		{"Lower bound is exclusive", "abcd", true},
		{"Typical name", "Walmart", true},
		{"Whitespace trimmed before measuring", "   ab   ", false},
		{"Too long", strings.Repeat("x", 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultMerchantRule(tt.line, 0))
		})
	}
}
