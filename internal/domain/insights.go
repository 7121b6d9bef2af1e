package domain

type Insights struct {
	Month            string             `json:"month"`
	TotalIncome      float64            `json:"totalIncome"`
	TotalExpenses    float64            `json:"totalExpenses"`
	Savings          float64            `json:"savings"`
	SavingsRate      float64            `json:"savingsRate"`
	ByCategory       map[string]float64 `json:"byCategory"`
	TopMerchants     []MerchantSpend    `json:"topMerchants"`
	TransactionCount int                `json:"transactionCount"`
}

type MerchantSpend struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
}
