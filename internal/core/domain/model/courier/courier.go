package courier

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const passwordMinLength = 8

// Domain errors for delivery person registration.
var (
	// ErrNameIsRequired is returned when the name is empty or whitespace-only.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNameContainsDigits is returned when the name contains a digit.
	ErrNameContainsDigits = errs.NewValueIsInvalidError("name must not contain digits")
	// ErrExperienceIsRequired is returned when the experience field is blank.
	ErrExperienceIsRequired = errs.NewValueIsRequiredError("experience")
	// ErrEmailIsInvalid is returned when the email does not match local@domain.tld.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPhoneIsInvalid is returned when the phone is not +<10-15 digits> after space removal.
	ErrPhoneIsInvalid = errs.NewValueIsInvalidError("phone")
	// ErrLicensePlateIsRequired is returned when the license plate field is blank.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("license plate")
	// ErrLicensePlateIsInvalid is returned when the plate does not match <2-3 letters>-<1-4 digits>.
	ErrLicensePlateIsInvalid = errs.NewValueIsInvalidError("license plate")
	// ErrPasswordIsTooWeak is returned when the password fails basic strength rules.
	ErrPasswordIsTooWeak = errs.NewValueIsInvalidError(
		"password must be at least 8 characters and include a letter and a digit")
	// ErrDeliveryPersonIsNotConstructed is returned when using an improperly initialized DeliveryPerson.
	ErrDeliveryPersonIsNotConstructed = errors.New(
		"DeliveryPerson must be created via NewDeliveryPerson constructor")
)

var (
	emailPattern        = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern        = regexp.MustCompile(`^\+\d{10,15}$`)
	licensePlatePattern = regexp.MustCompile(`^[A-Z]{2,3}-\d{1,4}$`)
)

// DeliveryPerson is the aggregate root for a registered delivery courier.
// It owns the courier's identity, contact details, vehicle credentials, and
// current location.
//
// All fields except the current location are validated at construction and
// immutable afterwards. The plaintext password is hashed before storage and
// never retained.
//
// Example:
//
//	person, err := courier.NewDeliveryPerson(
//	    "Maria Papadopoulou", "maria@example.com", "+30 123 456 7890",
//	    "Motorbike", "abc-1234", "Secret123", "2 years")
//	if err != nil {
//	    // exactly one typed registration failure
//	}
type DeliveryPerson struct {
	// id uniquely identifies the delivery person
	id kernel.UUID
	// name is the validated display name
	name string
	// email is the contact email address
	email string
	// phone is the contact phone number in international format
	phone string
	// vehicleType describes the courier's vehicle (e.g. "Motorbike")
	vehicleType string
	// licensePlate is the normalized vehicle plate
	licensePlate string
	// passwordHash is the bcrypt hash of the registration password
	passwordHash []byte
	// experience describes prior delivery experience
	experience string
	// currentLocation is the last reported position (nil until first update)
	currentLocation *kernel.GeoPoint
	// guard ensures the delivery person was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryPerson registers a new delivery person.
// Either all fields pass validation and a fully constructed instance is
// returned, or exactly one typed error describes the first failing field.
// Checks run in a fixed order: name presence, name digits, experience, email,
// phone, license plate, password strength.
//
// The password is hashed with bcrypt before storage; a fresh unique id is
// assigned on every successful call.
func NewDeliveryPerson(
	name string,
	email string,
	phone string,
	vehicleType string,
	licensePlate string,
	password string,
	experience string,
) (*DeliveryPerson, error) {
	person := &DeliveryPerson{
		guard: guard.NewConstructorGuard(),
	}

	// Validation is sequential: the first violation wins and surfaces alone.
	if err := person.setName(name); err != nil {
		return nil, err
	}
	if err := person.setExperience(experience); err != nil {
		return nil, err
	}
	if err := person.setEmail(email); err != nil {
		return nil, err
	}
	if err := person.setPhone(phone); err != nil {
		return nil, err
	}
	if err := person.setVehicleType(vehicleType); err != nil {
		return nil, err
	}
	if err := person.setLicensePlate(licensePlate); err != nil {
		return nil, err
	}
	if err := person.setPassword(password); err != nil {
		return nil, err
	}

	person.id = kernel.NewUUID()
	return person, nil
}

// Validate ensures the DeliveryPerson was created via NewDeliveryPerson.
func (p *DeliveryPerson) Validate() error {
	if p == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return p.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

// IsEqual compares two delivery persons by their unique identifiers.
func (p *DeliveryPerson) IsEqual(other *DeliveryPerson) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the delivery person's unique identifier.
func (p *DeliveryPerson) ID() kernel.UUID {
	return p.id
}

// Name returns the validated display name.
func (p *DeliveryPerson) Name() string {
	return p.name
}

// Email returns the contact email address.
func (p *DeliveryPerson) Email() string {
	return p.email
}

// Phone returns the normalized phone number.
func (p *DeliveryPerson) Phone() string {
	return p.phone
}

// VehicleType returns the courier's vehicle description.
func (p *DeliveryPerson) VehicleType() string {
	return p.vehicleType
}

// LicensePlate returns the normalized license plate.
func (p *DeliveryPerson) LicensePlate() string {
	return p.licensePlate
}

// Experience returns the courier's prior delivery experience.
func (p *DeliveryPerson) Experience() string {
	return p.experience
}

// CurrentLocation returns the last reported position, or nil if the courier
// has never reported one.
func (p *DeliveryPerson) CurrentLocation() *kernel.GeoPoint {
	return p.currentLocation
}

// UpdateLocation replaces the current location unconditionally.
// The point must be a properly constructed GeoPoint; beyond that the update
// always succeeds, last write wins.
func (p *DeliveryPerson) UpdateLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	p.currentLocation = &point
	return nil
}

// VerifyPassword reports whether the candidate matches the stored hash.
func (p *DeliveryPerson) VerifyPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword(p.passwordHash, []byte(candidate)) == nil
}

// AcceptOrder acknowledges an order offer. The surrounding assignment workflow
// lives outside this core, so no courier state changes here.
func (p *DeliveryPerson) AcceptOrder(orderID kernel.UUID) error {
	return orderID.Validate()
}

// RejectOrder declines an order offer. The surrounding assignment workflow
// lives outside this core, so no courier state changes here.
func (p *DeliveryPerson) RejectOrder(orderID kernel.UUID) error {
	return orderID.Validate()
}

func (p *DeliveryPerson) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameIsRequired
	}
	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			return ErrNameContainsDigits
		}
	}

	p.name = trimmed
	return nil
}

func (p *DeliveryPerson) setExperience(experience string) error {
	trimmed := strings.TrimSpace(experience)
	if trimmed == "" {
		return ErrExperienceIsRequired
	}

	p.experience = trimmed
	return nil
}

func (p *DeliveryPerson) setEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if !emailPattern.MatchString(trimmed) {
		return ErrEmailIsInvalid
	}

	p.email = trimmed
	return nil
}

func (p *DeliveryPerson) setPhone(phone string) error {
	normalized := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if !phonePattern.MatchString(normalized) {
		return ErrPhoneIsInvalid
	}

	p.phone = normalized
	return nil
}

func (p *DeliveryPerson) setVehicleType(vehicleType string) error {
	p.vehicleType = strings.TrimSpace(vehicleType)
	return nil
}

func (p *DeliveryPerson) setLicensePlate(licensePlate string) error {
	normalized := strings.ToUpper(strings.TrimSpace(licensePlate))
	if normalized == "" {
		return ErrLicensePlateIsRequired
	}
	if !licensePlatePattern.MatchString(normalized) {
		return ErrLicensePlateIsInvalid
	}

	p.licensePlate = normalized
	return nil
}

func (p *DeliveryPerson) setPassword(password string) error {
	if len(password) < passwordMinLength || !containsDigit(password) || !containsLetter(password) {
		return ErrPasswordIsTooWeak
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.passwordHash = hash
	return nil
}

func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func containsLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}
