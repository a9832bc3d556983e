package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian mobile numbers: optional +91 / 0 / 91 prefix, then 6-9 and nine digits
	rePhone   = regexp.MustCompile(`^(\+91[\-\s]?)?[0]?(91)?[6-9][0-9]{9}$`)
	rePincode = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	reUPI     = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
	reDigits  = regexp.MustCompile(`^[0-9]{13,19}$`)
	reName    = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]{1,49}$`)
)

func Email(s string) bool {
	return reEmail.MatchString(strings.TrimSpace(s))
}

func Phone(s string) bool {
	return rePhone.MatchString(strings.ReplaceAll(s, " ", ""))
}

// Pincode accepts Indian 6-digit PIN codes (no leading zero).
func Pincode(s string) bool {
	return rePincode.MatchString(strings.TrimSpace(s))
}

func Name(s string) bool {
	return reName.MatchString(strings.TrimSpace(s))
}

func UPIID(s string) bool {
	return reUPI.MatchString(strings.TrimSpace(s))
}

// CardNumber runs the Luhn mod-10 check over a 13-19 digit card number.
// Spaces and dashes are stripped first.
func CardNumber(s string) bool {
	cleaned := stripCard(s)
	if !reDigits.MatchString(cleaned) {
		return false
	}
	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		d := int(cleaned[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CardType detects the network from the number prefix.
func CardType(s string) string {
	cleaned := stripCard(s)
	switch {
	case strings.HasPrefix(cleaned, "4"):
		return "visa"
	case matchPrefixRange(cleaned, "51", "55") || matchPrefixRange(cleaned, "22", "27"):
		return "mastercard"
	case strings.HasPrefix(cleaned, "34") || strings.HasPrefix(cleaned, "37"):
		return "amex"
	case strings.HasPrefix(cleaned, "6"):
		return "discover"
	}
	return "unknown"
}

func matchPrefixRange(s, lo, hi string) bool {
	if len(s) < 2 {
		return false
	}
	p := s[:2]
	return p >= lo && p <= hi
}

func stripCard(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// ExpiryDate reports whether month/year form a valid date that is not in
// the past relative to now. Two-digit years are taken as 20YY.
func ExpiryDate(month, year string, now time.Time) bool {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return false
	}
	ys := strings.TrimSpace(year)
	y, err := strconv.Atoi(ys)
	if err != nil {
		return false
	}
	if len(ys) == 2 {
		y += 2000
	}
	cy, cm := now.Year(), int(now.Month())
	if y > cy {
		return true
	}
	return y == cy && m >= cm
}

// CVV is 3 digits, or 4 for amex.
func CVV(cvv, cardType string) bool {
	want := 3
	if cardType == "amex" {
		want = 4
	}
	if len(cvv) != want {
		return false
	}
	for i := 0; i < len(cvv); i++ {
		if cvv[i] < '0' || cvv[i] > '9' {
			return false
		}
	}
	return true
}

// ShippingAddress returns a field-keyed error map; empty map means valid.
func ShippingAddress(s domain.ShippingInfo) map[string]string {
	errs := map[string]string{}
	if !Name(s.Name) {
		errs["name"] = "Please enter a valid name"
	}
	if !Phone(s.Phone) {
		errs["phone"] = "Please enter a valid phone number"
	}
	if len(strings.TrimSpace(s.Address)) < 10 {
		errs["address"] = "Please enter a complete address (at least 10 characters)"
	}
	if len(strings.TrimSpace(s.City)) < 2 {
		errs["city"] = "Please enter a valid city name"
	}
	if len(strings.TrimSpace(s.State)) < 2 {
		errs["state"] = "Please enter a valid state name"
	}
	if !Pincode(s.Pincode) {
		errs["pincode"] = "Please enter a valid 6-digit PIN code"
	}
	return errs
}

// PaymentForm validates method-specific fields. Methods without extra
// fields (cod, netbanking, wallet) always validate.
func PaymentForm(p domain.PaymentInfo, now time.Time) map[string]string {
	errs := map[string]string{}
	switch p.Method {
	case domain.MethodCard:
		if !CardNumber(p.CardNumber) {
			errs["cardNumber"] = "Please enter a valid card number"
		}
		if p.ExpiryMonth == "" || p.ExpiryYear == "" {
			errs["expiry"] = "Please enter expiry date"
		} else if !ExpiryDate(p.ExpiryMonth, p.ExpiryYear, now) {
			errs["expiry"] = "Card has expired or invalid date"
		}
		if !CVV(p.CVV, CardType(p.CardNumber)) {
			errs["cvv"] = "Please enter a valid CVV"
		}
		if len(strings.TrimSpace(p.CardholderName)) < 2 {
			errs["cardholderName"] = "Please enter cardholder name"
		}
	case domain.MethodUPI:
		if !UPIID(p.UPIID) {
			errs["upiId"] = "Please enter a valid UPI ID"
		}
	}
	return errs
}
