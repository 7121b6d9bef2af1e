package receipt

import "strings"

const (
	// UnknownMerchant is reported when no line qualifies as a merchant name.
	UnknownMerchant = "Unknown"

	excerptLimit = 500
)

type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ParsedReceipt struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
	Items    []Item  `json:"items"`
	RawText  string  `json:"text"`
}

type Parser struct {
	classifier *Classifier
}

func NewParser(opts ...ClassifierOption) *Parser {
	return &Parser{classifier: NewClassifier(opts...)}
}

// Parse turns raw OCR text into a structured receipt. It never fails:
// a missing merchant degrades to UnknownMerchant, a missing total to 0 and
// the item list may be empty. The total is taken from the last total line
// that carries an amount; it is never reconciled against the item prices.
func (p *Parser) Parse(rawText string) ParsedReceipt {
	parsed := ParsedReceipt{
		Merchant: UnknownMerchant,
		Items:    []Item{},
		RawText:  excerpt(rawText),
	}

	for _, line := range p.classifier.Classify(rawText) {
		if line.Merchant {
			parsed.Merchant = strings.TrimSpace(line.Text)
		}
		if line.Total && line.HasTotalAmount {
			parsed.Total = line.TotalAmount
		}
		if line.Item {
			parsed.Items = append(parsed.Items, Item{Name: line.ItemName, Price: line.ItemPrice})
		}
	}
	return parsed
}

// Parse runs a parser with the default classification rules.
func Parse(rawText string) ParsedReceipt {
	return NewParser().Parse(rawText)
}

func excerpt(s string) string {
	if len(s) <= excerptLimit {
		return s
	}
	return s[:excerptLimit]
}
