package domain

// Payment method codes accepted at checkout.
const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodNetbanking = "netbanking"
	MethodWallet     = "wallet"
	MethodCOD        = "cod"
)

type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type PaymentInfo struct {
	Method         string `json:"method"` // card | upi | netbanking | wallet | cod
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpiryMonth    string `json:"expiryMonth,omitempty"`
	ExpiryYear     string `json:"expiryYear,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	UPIID          string `json:"upiId,omitempty"`
}
