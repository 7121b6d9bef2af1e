package domain

import "time"

// TransactionFilter narrows transaction listings; zero values mean
// "no constraint".
type TransactionFilter struct {
	Type     string
	Category string
	From     time.Time
	To       time.Time
	Limit    int
}
