package models

// DeliveryType selects how the customer receives the order.
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "retirada"
	DeliveryTypeDelivery DeliveryType = "entrega"
)

// Address is the delivery address collected at checkout.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	CEP          string `json:"cep,omitempty"`
	Reference    string `json:"reference,omitempty"`
}

// CheckoutData holds the customer-entered checkout session. It is persisted
// across page reloads and overwritten on every change.
type CheckoutData struct {
	Name         string       `json:"name"`
	Phone        string       `json:"phone,omitempty"`
	Address      *Address     `json:"address,omitempty"`
	DeliveryType DeliveryType `json:"deliveryType"`
	Observations string       `json:"observations,omitempty"`
}
