package receipt

import (
	"regexp"
	"strconv"
	"strings"
)

// MerchantRule decides whether a line may serve as the merchant name.
// The default is first line of reasonable length; swap it for a smarter
// heuristic without touching the parser.
type MerchantRule func(line string, index int) bool

func DefaultMerchantRule(line string, _ int) bool {
	n := len(strings.TrimSpace(line))
	return n > 3 && n < 50
}

type ClassifiedLine struct {
	Text     string
	Merchant bool
	Total    bool
	Item     bool

	// TotalAmount is valid only when HasTotalAmount is set; a total line
	// without a recognizable number keeps its Total flag but captures
	// nothing.
	TotalAmount    float64
	HasTotalAmount bool
	ItemName       string
	ItemPrice      float64
}

var (
	amountRe = regexp.MustCompile(`[\d,]+\.?\d*`)
	itemRe   = regexp.MustCompile(`(.+?)\s+([\d,]+\.\d{2})\s*$`)
)

type Classifier struct {
	merchantRule MerchantRule
}

type ClassifierOption func(*Classifier)

func WithMerchantRule(rule MerchantRule) ClassifierOption {
	return func(c *Classifier) {
		c.merchantRule = rule
	}
}

func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{merchantRule: DefaultMerchantRule}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify splits raw OCR text into lines and tags each with its roles.
// Exactly one line can carry the merchant flag (first match wins). A line
// is either a total line or an item line, never both; merchant may overlap
// with either.
func (c *Classifier) Classify(rawText string) []ClassifiedLine {
	lines := strings.Split(rawText, "\n")
	classified := make([]ClassifiedLine, 0, len(lines))

	merchantFound := false
	for i, line := range lines {
		cl := ClassifiedLine{Text: line}

		if !merchantFound && c.merchantRule(line, i) {
			cl.Merchant = true
			merchantFound = true
		}

		if strings.Contains(strings.ToLower(line), "total") {
			cl.Total = true
			if m := amountRe.FindString(line); m != "" {
				if amount, err := parseAmount(m); err == nil {
					cl.TotalAmount = amount
					cl.HasTotalAmount = true
				}
			}
		}

		if !cl.Total {
			if m := itemRe.FindStringSubmatch(line); m != nil {
				if price, err := parseAmount(m[2]); err == nil {
					cl.Item = true
					cl.ItemName = strings.TrimSpace(m[1])
					cl.ItemPrice = price
				}
			}
		}

		classified = append(classified, cl)
	}
	return classified
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
