package service

import (
	"github.com/dukerupert/ezonekart/internal/domain"
)

// Service-level sentinel errors. Handlers map these onto HTTP status
// codes via domain.ErrorCode.
var (
	ErrProductNotFound = domain.Errorf(domain.ENOTFOUND, "", "Product not found")
	ErrItemNotInCart   = domain.Errorf(domain.ENOTFOUND, "", "Item is not in the cart")

	ErrStockExceeded = domain.Errorf(domain.ECONFLICT, "", "Not enough stock available")
	ErrOrderInFlight = domain.Errorf(domain.ECONFLICT, "", "An order is already being placed")

	ErrEmptyCart             = domain.Errorf(domain.EINVALID, "", "Your cart is empty")
	ErrAddressRequired       = domain.Errorf(domain.EINVALID, "", "A shipping address is required")
	ErrPaymentMethodRequired = domain.Errorf(domain.EINVALID, "", "A payment method is required")
	ErrInvalidPaymentMethod  = domain.Errorf(domain.EINVALID, "", "Unknown payment method")
	ErrInvalidTransition     = domain.Errorf(domain.EINVALID, "", "That step is not available right now")

	ErrOrderPlacementFailed = domain.Errorf(domain.EPAYMENT, "", "Order placement failed, please try again")
)
