package payment

import (
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

const cardNumberLength = 16

// Typed validation failures for payment methods.
var (
	// ErrHolderIsRequired is returned when the cardholder name is blank.
	ErrHolderIsRequired = errs.NewValueIsRequiredError("card holder")
	// ErrCVVIsRequired is returned when the CVV is blank.
	ErrCVVIsRequired = errs.NewValueIsRequiredError("cvv")
	// ErrCardNumberIsInvalid is returned when the number is not exactly 16 digits.
	ErrCardNumberIsInvalid = errs.NewValueIsInvalidError("card number must be 16 digits")
	// ErrExpiryFormatIsInvalid is returned when the expiry does not parse as MM/YY.
	ErrExpiryFormatIsInvalid = errs.NewValueIsInvalidError("expiry must be in MM/YY format")
	// ErrCardExpired is returned when the expiry month has already passed.
	ErrCardExpired = errs.NewValueIsInvalidError("card expired")
)

// Method is a payment card data holder. Construction never fails: raw input is
// only normalized (spaces stripped from the number) and the last four digits
// derived, so a UI can collect partial input without raising. Validation is a
// separate, explicit step invoked at commit time.
//
// A method is either self-authorizing or delegates charge authorization to an
// attached Provider; the variant is fixed at construction.
type Method struct {
	// methodID uniquely identifies the payment method
	methodID kernel.UUID
	// holder is the cardholder name as entered
	holder string
	// number is the card number with spaces stripped
	number string
	// lastFour is derived from the normalized number
	lastFour string
	// expiry is the raw MM/YY expiry string
	expiry string
	// cvv is the card verification value as entered
	cvv string
	// provider authorizes charges for this method (nil means self-authorizing)
	provider Provider
}

// NewMethod creates a self-authorizing payment method from raw card input.
// No validation happens here; call Validate before charging.
func NewMethod(holder string, number string, expiry string, cvv string) *Method {
	normalized := strings.ReplaceAll(number, " ", "")

	lastFour := normalized
	if len(normalized) > 4 {
		lastFour = normalized[len(normalized)-4:]
	}

	return &Method{
		methodID: kernel.NewUUID(),
		holder:   holder,
		number:   normalized,
		lastFour: lastFour,
		expiry:   expiry,
		cvv:      cvv,
	}
}

// NewMethodWithProvider creates a payment method that delegates charge
// authorization to the given provider.
func NewMethodWithProvider(holder string, number string, expiry string, cvv string, provider Provider) *Method {
	method := NewMethod(holder, number, expiry, cvv)
	method.provider = provider
	return method
}

// ID returns the payment method's unique identifier.
func (m *Method) ID() kernel.UUID {
	return m.methodID
}

// Holder returns the cardholder name.
func (m *Method) Holder() string {
	return m.holder
}

// LastFour returns the last four digits of the normalized card number.
func (m *Method) LastFour() string {
	return m.lastFour
}

// Expiry returns the raw MM/YY expiry string.
func (m *Method) Expiry() string {
	return m.expiry
}

// CVV returns the card verification value.
func (m *Method) CVV() string {
	return m.cvv
}

// Provider returns the attached charge authorizer, or nil for a
// self-authorizing method.
func (m *Method) Provider() Provider {
	return m.provider
}

// MaskedNumber returns the display form of the card number:
// "**** **** **** " followed by the last four digits.
func (m *Method) MaskedNumber() string {
	return "**** **** **** " + m.lastFour
}

// Validate checks the card data and returns the first violated rule as a typed
// error, in a fixed order: holder, CVV, number, expiry format, expiry date.
// It is idempotent: the method is immutable, so repeated calls yield the same
// outcome (modulo the passage of time for the expiry check).
func (m *Method) Validate() error {
	return m.validateAt(time.Now())
}

func (m *Method) validateAt(now time.Time) error {
	if strings.TrimSpace(m.holder) == "" {
		return ErrHolderIsRequired
	}
	if m.cvv == "" {
		return ErrCVVIsRequired
	}
	if len(m.number) != cardNumberLength || !isAllDigits(m.number) {
		return ErrCardNumberIsInvalid
	}

	expiry, err := time.Parse("01/06", m.expiry)
	if err != nil {
		return ErrExpiryFormatIsInvalid
	}

	// The card is good through the last moment of its expiry month.
	endOfMonth := time.Date(expiry.Year(), expiry.Month()+1, 1, 0, 0, 0, 0, now.Location())
	if !now.Before(endOfMonth) {
		return ErrCardExpired
	}

	return nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
