package ledger

import (
	"strconv"
	"strings"
)

// ParsePaymentLine extracts a member name and an amount from one line of chat
// text, e.g. "@john 50 paid" or "@mary ann 100". The line must start with @
// and contain at least a name token and a numeric token. The amount is the
// rightmost token that parses as a number (token 0 always belongs to the
// name); everything before it is the name. The name is resolved against the
// roster case-insensitively and the roster casing is returned on a match;
// otherwise the raw lowercased candidate comes back and the caller decides
// whether that is an error.
func ParsePaymentLine(line string, members []string) (string, float64, bool) {
	line = strings.ToLower(strings.TrimSpace(line))

	if !strings.HasPrefix(line, "@") {
		return "", 0, false
	}

	// Tolerate the keyword with or without a leading space.
	line = strings.ReplaceAll(line, " paid", "")
	line = strings.ReplaceAll(line, "paid", "")

	parts := strings.Fields(line)
	if len(parts) < 2 {
		return "", 0, false
	}

	// Reverse scan: the rightmost numeric token wins, since the amount
	// trails the name and names are assumed non-numeric.
	amountIndex := -1
	var amount float64
	for i := len(parts) - 1; i > 0; i-- {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err == nil {
			amount = v
			amountIndex = i
			break
		}
	}
	if amountIndex < 0 {
		return "", 0, false
	}

	name := strings.TrimPrefix(strings.Join(parts[:amountIndex], " "), "@")

	for _, m := range members {
		if strings.EqualFold(m, name) {
			return m, amount, true
		}
	}
	return name, amount, true
}
