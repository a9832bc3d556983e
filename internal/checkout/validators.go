package checkout

import "github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/validate"

func defaultValidators() validators {
	return validators{
		shipping: validate.ShippingAddress,
		payment:  validate.PaymentForm,
	}
}
