package validate

import "strings"

// FormatCardNumber groups digits for display: 4-6-5 for amex, 4-4-4-4
// otherwise.
func FormatCardNumber(s string) string {
	cleaned := stripCard(s)
	if CardType(cleaned) == "amex" && len(cleaned) == 15 {
		return cleaned[:4] + " " + cleaned[4:10] + " " + cleaned[10:]
	}
	var b strings.Builder
	for i, r := range cleaned {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCardNumber hides all but the last four digits.
func MaskCardNumber(s string) string {
	cleaned := stripCard(s)
	if len(cleaned) < 4 {
		return s
	}
	return FormatCardNumber(strings.Repeat("*", len(cleaned)-4) + cleaned[len(cleaned)-4:])
}

// MethodName maps a payment method code to its display name.
func MethodName(method string) string {
	switch method {
	case "card":
		return "Credit/Debit Card"
	case "upi":
		return "UPI Payment"
	case "netbanking":
		return "Net Banking"
	case "wallet":
		return "Digital Wallet"
	case "cod":
		return "Cash on Delivery"
	}
	return method
}
