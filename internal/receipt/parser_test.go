package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		rawText  string
		expected ParsedReceipt
	}{
		{
			name:    "Typical grocery receipt",
			rawText: "Walmart\nMilk 3.99\nBread 2.50\nTOTAL 6.49\n",
			expected: ParsedReceipt{
				Merchant: "Walmart",
				Total:    6.49,
				Items: []Item{
					{Name: "Milk", Price: 3.99},
					{Name: "Bread", Price: 2.50},
				},
				RawText: "Walmart\nMilk 3.99\nBread 2.50\nTOTAL 6.49\n",
			},
		},
		{
			name:    "Total does not reconcile against items",
			rawText: "Metro\nEggs 4.25\nCheese 7.10\nTOTAL 99.99",
			expected: ParsedReceipt{
				Merchant: "Metro",
				Total:    99.99,
				Items: []Item{
					{Name: "Eggs", Price: 4.25},
					{Name: "Cheese", Price: 7.10},
				},
				RawText: "Metro\nEggs 4.25\nCheese 7.10\nTOTAL 99.99",
			},
		},
		{
			name:    "Last total line wins",
			rawText: "Loblaws\nSubtotal 10.00\nTotal 11.30",
			expected: ParsedReceipt{
				Merchant: "Loblaws",
				Total:    11.30,
				Items:    []Item{},
				RawText:  "Loblaws\nSubtotal 10.00\nTotal 11.30",
			},
		},
		{
			name:    "No total line defaults to zero",
			rawText: "Costco\nPaper Towels 19.99",
			expected: ParsedReceipt{
				Merchant: "Costco",
				Total:    0,
				Items:    []Item{{Name: "Paper Towels", Price: 19.99}},
				RawText:  "Costco\nPaper Towels 19.99",
			},
		},
		{
			name:    "No merchant candidate degrades to Unknown",
			rawText: "ab\nxy\nTOTAL 5.00",
			expected: ParsedReceipt{
				Merchant: "Unknown",
				Total:    5.00,
				Items:    []Item{},
				RawText:  "ab\nxy\nTOTAL 5.00",
			},
		},
		{
			name:    "First qualifying line wins even when nonsensical",
			rawText: "1234\nReal Canadian Superstore\nTOTAL 3.00",
			expected: ParsedReceipt{
				Merchant: "1234",
				Total:    3.00,
				Items:    []Item{},
				RawText:  "1234\nReal Canadian Superstore\nTOTAL 3.00",
			},
		},
		{
			name:    "Merchant found after disqualifying lines",
			rawText: "ab\ncd\n" + strings.Repeat("x", 60) + "\nFreshCo\nTOTAL 1.00",
			expected: ParsedReceipt{
				Merchant: "FreshCo",
				Total:    1.00,
				Items:    []Item{},
				RawText:  "ab\ncd\n" + strings.Repeat("x", 60) + "\nFreshCo\nTOTAL 1.00",
			},
		},
		{
			name:    "Comma thousands separators stripped",
			rawText: "Best Buy\nLaptop 1,299.99\nTOTAL 1,299.99",
			expected: ParsedReceipt{
				Merchant: "Best Buy",
				Total:    1299.99,
				Items:    []Item{{Name: "Laptop", Price: 1299.99}},
				RawText:  "Best Buy\nLaptop 1,299.99\nTOTAL 1,299.99",
			},
		},
		{
			name:    "Total line without amount captures nothing",
			rawText: "Sobeys\nTotal due below\nMilk 3.99",
			expected: ParsedReceipt{
				Merchant: "Sobeys",
				Total:    0,
				Items:    []Item{{Name: "Milk", Price: 3.99}},
				RawText:  "Sobeys\nTotal due below\nMilk 3.99",
			},
		},
		{
			name:    "Empty input",
			rawText: "",
			expected: ParsedReceipt{
				Merchant: "Unknown",
				Total:    0,
				Items:    []Item{},
				RawText:  "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.rawText)
			assert.Equal(t, tt.expected, parsed)
			assert.GreaterOrEqual(t, parsed.Total, 0.0)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	rawText := "Walmart\nMilk 3.99\nBread 2.50\nTOTAL 6.49\n"
	first := Parse(rawText)
	second := Parse(rawText)
	assert.Equal(t, first, second)
}

func TestParseExcerptIsBounded(t *testing.T) {
	rawText := "Walmart\n" + strings.Repeat("Milk 3.99\n", 200)
	parsed := Parse(rawText)
	assert.Len(t, parsed.RawText, 500)
	assert.Equal(t, rawText[:500], parsed.RawText)
}

func TestParseWithCustomMerchantRule(t *testing.T) {
	rule := func(line string, index int) bool {
		return index == 1
	}
	parsed := NewParser(WithMerchantRule(rule)).Parse("1234\nWalmart\nTOTAL 5.00")
	assert.Equal(t, "Walmart", parsed.Merchant)
}
