package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Money values travel as decimal strings ("75.00") and are added as integer
// paise, so fare math never touches floats.

// ParseMoney converts a decimal string to paise. Accepts at most two
// fractional digits.
func ParseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid amount %q: too many decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	paise := w*100 + f
	if neg {
		paise = -paise
	}
	return paise, nil
}

// FormatMoney renders paise back to a two-decimal string.
func FormatMoney(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}

// AddMoney sums decimal strings, failing on the first malformed value.
func AddMoney(amounts ...string) (string, error) {
	var total int64
	for _, a := range amounts {
		v, err := ParseMoney(a)
		if err != nil {
			return "", err
		}
		total += v
	}
	return FormatMoney(total), nil
}
