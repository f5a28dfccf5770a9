package enum

import "encoding/json"

// FxCurrency identifies the foreign currency of tendered cash. The base
// currency (Kip) is never an FxCurrency.
type FxCurrency int

const (
	FxCurrencyNone FxCurrency = 0
	FxCurrencyUSD  FxCurrency = 1
	FxCurrencyTHB  FxCurrency = 2
)

func (c FxCurrency) String() string {
	names := [...]string{"", "USD", "THB"}
	if c < 0 || int(c) >= len(names) {
		return "Unknown"
	}
	return names[c]
}

func (c FxCurrency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *FxCurrency) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = FxCurrency(i)
		return nil
	}
	switch str {
	case "USD":
		*c = FxCurrencyUSD
	case "THB":
		*c = FxCurrencyTHB
	default:
		*c = FxCurrencyNone
	}
	return nil
}

// ParseFxCurrency maps a currency code to its enum value; unknown codes
// collapse to FxCurrencyNone.
func ParseFxCurrency(code string) FxCurrency {
	switch code {
	case "USD":
		return FxCurrencyUSD
	case "THB":
		return FxCurrencyTHB
	}
	return FxCurrencyNone
}
