package exchange

// RatesQuery carries the base currency and optional date of a rates request
type RatesQuery struct {
	Base string `form:"base" binding:"omitempty,currency_code"`
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ConvertRequest asks for an amount conversion between two currencies
type ConvertRequest struct {
	From   string `json:"from" binding:"required,currency_code"`
	To     string `json:"to" binding:"required,currency_code"`
	Amount string `json:"amount" binding:"required"`
}

// RatesResponse is the API view of a rate table
type RatesResponse struct {
	Base   string            `json:"base"`
	Date   string            `json:"date"`
	Rates  map[string]string `json:"rates"`
	Cached bool              `json:"cached"`
}

// ConvertResponse is the API view of a conversion result
type ConvertResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Rate      string `json:"rate"`
	Converted string `json:"converted"`
	Cached    bool   `json:"cached"`
}
