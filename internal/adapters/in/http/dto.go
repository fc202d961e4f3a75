package http

import "time"

// Error is the common error envelope returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterCourierRequest is the payload for POST /api/v1/couriers.
type RegisterCourierRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicleType"`
	LicensePlate string `json:"licensePlate"`
	Password     string `json:"password"`
	Experience   string `json:"experience"`
}

// CourierResponse is one registered delivery person.
type CourierResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	VehicleType  string            `json:"vehicleType"`
	LicensePlate string            `json:"licensePlate"`
	Location     *LocationResponse `json:"location,omitempty"`
}

// LocationResponse is a reported courier position.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateLocationRequest is the payload for POST /api/v1/couriers/:id/location.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddPaymentMethodRequest is the payload for POST /api/v1/payment-methods.
type AddPaymentMethodRequest struct {
	Holder string `json:"holder"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// PaymentMethodResponse is a stored payment method. The card number is never
// echoed back; only the masked form leaves the service.
type PaymentMethodResponse struct {
	ID           string `json:"id"`
	Holder       string `json:"holder"`
	MaskedNumber string `json:"maskedNumber"`
	Expiry       string `json:"expiry"`
}

// AddMenuItemRequest is the payload for POST /api/v1/menu.
type AddMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// MenuItemResponse is one dish on the menu.
type MenuItemResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// PlaceOrderRequest is the payload for POST /api/v1/orders. Items reference
// menu dishes by name; the payment method must have been saved to the wallet
// beforehand.
type PlaceOrderRequest struct {
	Items           []string `json:"items"`
	PaymentMethodID string   `json:"paymentMethodId"`
	Address         string   `json:"address"`
	Note            string   `json:"note"`
}

// OrderResponse is one placed order.
type OrderResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	TotalAmount     float64   `json:"totalAmount"`
	DeliveryAddress string    `json:"deliveryAddress"`
	CustomerNote    string    `json:"customerNote,omitempty"`
	PlacedAt        time.Time `json:"placedAt"`
}
