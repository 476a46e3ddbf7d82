package model

// BalanceAxis is one spoke of the life-balance radar. Value is always within
// [0, 100], rounded to two decimals.
type BalanceAxis struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BalanceScore is the full radar payload: the ordered axes plus their mean.
type BalanceScore struct {
	Axes  []BalanceAxis `json:"axes"`
	Total float64       `json:"total"`
}
