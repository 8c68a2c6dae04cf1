package models

// ContactForm is a general inquiry sent through the contact page. It never
// touches the cart.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
