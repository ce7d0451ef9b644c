package conversation

import (
	"regexp"
	"strconv"
	"strings"

	"infibot/models"
)

var (
	quantityPattern = regexp.MustCompile(`(?i)(\d+)\s*tickets?`)
	bareNumber      = regexp.MustCompile(`^\s*(\d+)\s*$`)
	priceDigits     = regexp.MustCompile(`\d+`)
)

// parseQuantity extracts a ticket count from free text ("3 tickets", "1
// ticket", or just "3"). The second return reports whether anything matched.
func parseQuantity(text string) (int, bool) {
	m := quantityPattern.FindStringSubmatch(text)
	if m == nil {
		m = bareNumber.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// clampQuantity bounds a ticket count to the bookable range.
func clampQuantity(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// unitPrice extracts the numeric value from a formatted price string such as
// "₹1500".
func unitPrice(price string) int {
	m := priceDigits.FindString(price)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// parseUserInfo is a best-effort adapter from colon-delimited free text
// ("Name: Asha, Age: 25, ...") into the structured form input. It reports
// false when the required fields are missing; validation happens downstream
// in the same transition the structured path uses.
func parseUserInfo(text string) (models.UserInfo, bool) {
	var info models.UserInfo
	found := false

	for _, chunk := range splitFields(text) {
		key, value, ok := strings.Cut(chunk, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch {
		case strings.Contains(key, "name"):
			info.Name = value
			found = true
		case strings.Contains(key, "age"):
			info.Age, _ = strconv.Atoi(value)
		case strings.Contains(key, "gender"):
			info.Gender = value
		case strings.Contains(key, "phone"):
			info.Phone = value
		case strings.Contains(key, "email"):
			info.Email = value
		}
	}

	if !found || info.Name == "" || info.Phone == "" || info.Email == "" {
		return models.UserInfo{}, false
	}
	return info, true
}

func splitFields(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})
}
