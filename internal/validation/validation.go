// Package validation gates form submission with field-level rules. All
// validators are pure: they never mutate their input and return either an
// empty string or the first violated rule's message for the field.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"doceencanto/internal/models"
)

// FieldErrors maps a field name to the first violated rule's message. An
// empty map means the object passed.
type FieldErrors map[string]string

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	cepPattern      = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Contact form fields

func ValidateContactName(name string) string {
	switch n := utf8.RuneCountInString(name); {
	case n < 2:
		return "Nome deve ter pelo menos 2 caracteres"
	case n > 100:
		return "Nome deve ter no máximo 100 caracteres"
	}
	return ""
}

func ValidateContactEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return "Digite um email válido"
	}
	if utf8.RuneCountInString(email) > 255 {
		return "Email deve ter no máximo 255 caracteres"
	}
	return ""
}

func ValidateContactPhone(phone string) string {
	if !digitsPattern.MatchString(phone) {
		return "Telefone deve conter apenas números"
	}
	switch n := len(phone); {
	case n < 10:
		return "Telefone deve ter pelo menos 10 dígitos"
	case n > 11:
		return "Telefone deve ter no máximo 11 dígitos"
	}
	return ""
}

func ValidateContactMessage(message string) string {
	switch n := utf8.RuneCountInString(message); {
	case n < 10:
		return "Mensagem deve ter pelo menos 10 caracteres"
	case n > 1000:
		return "Mensagem deve ter no máximo 1000 caracteres"
	}
	return ""
}

// ValidateContactForm checks every contact-form field and collects the first
// violated message per field.
func ValidateContactForm(form models.ContactForm) FieldErrors {
	errs := FieldErrors{}
	if msg := ValidateContactName(form.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := ValidateContactEmail(form.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidateContactPhone(form.Phone); msg != "" {
		errs["phone"] = msg
	}
	if msg := ValidateContactMessage(form.Message); msg != "" {
		errs["message"] = msg
	}
	return errs
}

// Address fields

func ValidateStreet(street string) string {
	switch n := utf8.RuneCountInString(strings.TrimSpace(street)); {
	case n < 3:
		return "Rua deve ter pelo menos 3 caracteres"
	case n > 100:
		return "Rua deve ter no máximo 100 caracteres"
	}
	return ""
}

func ValidateNumber(number string) string {
	switch n := utf8.RuneCountInString(strings.TrimSpace(number)); {
	case n < 1:
		return "Número é obrigatório"
	case n > 20:
		return "Número deve ter no máximo 20 caracteres"
	}
	return ""
}

func ValidateNeighborhood(neighborhood string) string {
	switch n := utf8.RuneCountInString(strings.TrimSpace(neighborhood)); {
	case n < 2:
		return "Bairro deve ter pelo menos 2 caracteres"
	case n > 50:
		return "Bairro deve ter no máximo 50 caracteres"
	}
	return ""
}

// ValidateCEP accepts an empty CEP; when present it must be 5 digits, an
// optional hyphen and 3 digits.
func ValidateCEP(cep string) string {
	if cep != "" && !cepPattern.MatchString(cep) {
		return "CEP deve estar no formato 00000-000"
	}
	return ""
}

func ValidateReference(reference string) string {
	if utf8.RuneCountInString(reference) > 200 {
		return "Observação deve ter no máximo 200 caracteres"
	}
	return ""
}

// ValidateAddress checks the delivery address and collects the first
// violated message per field.
func ValidateAddress(address models.Address) FieldErrors {
	errs := FieldErrors{}
	if msg := ValidateStreet(address.Street); msg != "" {
		errs["street"] = msg
	}
	if msg := ValidateNumber(address.Number); msg != "" {
		errs["number"] = msg
	}
	if msg := ValidateNeighborhood(address.Neighborhood); msg != "" {
		errs["neighborhood"] = msg
	}
	if msg := ValidateCEP(address.CEP); msg != "" {
		errs["cep"] = msg
	}
	if msg := ValidateReference(address.Reference); msg != "" {
		errs["reference"] = msg
	}
	return errs
}

// ValidateCheckout gates the WhatsApp handoff. The name is always required;
// address fields only matter when the order is for delivery.
func ValidateCheckout(data models.CheckoutData) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(data.Name) == "" {
		errs["name"] = "Por favor, informe seu nome"
	}
	if data.DeliveryType == models.DeliveryTypeDelivery {
		var address models.Address
		if data.Address != nil {
			address = *data.Address
		}
		for field, msg := range ValidateAddress(address) {
			errs[field] = msg
		}
	}
	return errs
}

// FormatPhone strips all non-digit characters and keeps the first 11 digits.
// Used both as an input mask and before validation.
func FormatPhone(value string) string {
	digits := nonDigitPattern.ReplaceAllString(value, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	return digits
}

// FormatCEP strips non-digits, caps at 8 digits and inserts the hyphen after
// the 5th digit once present.
func FormatCEP(value string) string {
	digits := nonDigitPattern.ReplaceAllString(value, "")
	if len(digits) > 8 {
		digits = digits[:8]
	}
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}
