package money

import "strconv"

// FormatKip renders a Kip amount with thousands separators and the currency
// sign, e.g. 35000 -> "35,000₭". Amounts are whole Kip; there is no
// fractional unit.
func FormatKip(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	out := make([]byte, 0, len(s)+len(s)/3+2)
	if neg {
		out = append(out, '-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out) + "₭"
}
