package validation

import (
	"strings"
	"testing"

	"doceencanto/internal/models"
)

func TestValidateContactForm(t *testing.T) {
	valid := models.ContactForm{
		Name:    "Ana Souza",
		Email:   "ana@example.com",
		Phone:   "15999998888",
		Message: "Gostaria de encomendar doces para uma festa.",
	}
	if errs := ValidateContactForm(valid); len(errs) != 0 {
		t.Fatalf("valid form produced errors: %v", errs)
	}

	cases := []struct {
		name  string
		form  models.ContactForm
		field string
		msg   string
	}{
		{
			name:  "short name",
			form:  models.ContactForm{Name: "A", Email: valid.Email, Phone: valid.Phone, Message: valid.Message},
			field: "name",
			msg:   "Nome deve ter pelo menos 2 caracteres",
		},
		{
			name:  "long name",
			form:  models.ContactForm{Name: strings.Repeat("a", 101), Email: valid.Email, Phone: valid.Phone, Message: valid.Message},
			field: "name",
			msg:   "Nome deve ter no máximo 100 caracteres",
		},
		{
			name:  "bad email",
			form:  models.ContactForm{Name: valid.Name, Email: "not-an-email", Phone: valid.Phone, Message: valid.Message},
			field: "email",
			msg:   "Digite um email válido",
		},
		{
			name:  "phone with letters",
			form:  models.ContactForm{Name: valid.Name, Email: valid.Email, Phone: "15abc", Message: valid.Message},
			field: "phone",
			msg:   "Telefone deve conter apenas números",
		},
		{
			name:  "phone too short",
			form:  models.ContactForm{Name: valid.Name, Email: valid.Email, Phone: "159999", Message: valid.Message},
			field: "phone",
			msg:   "Telefone deve ter pelo menos 10 dígitos",
		},
		{
			name:  "phone too long",
			form:  models.ContactForm{Name: valid.Name, Email: valid.Email, Phone: "159999988881", Message: valid.Message},
			field: "phone",
			msg:   "Telefone deve ter no máximo 11 dígitos",
		},
		{
			name:  "short message",
			form:  models.ContactForm{Name: valid.Name, Email: valid.Email, Phone: valid.Phone, Message: "Oi"},
			field: "message",
			msg:   "Mensagem deve ter pelo menos 10 caracteres",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateContactForm(tc.form)
			if errs[tc.field] != tc.msg {
				t.Errorf("errs[%q] = %q, want %q", tc.field, errs[tc.field], tc.msg)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	errs := ValidateAddress(models.Address{Street: "Oi", Number: "", Neighborhood: "Centro"})
	if errs["street"] != "Rua deve ter pelo menos 3 caracteres" {
		t.Errorf("street error = %q", errs["street"])
	}
	if errs["number"] != "Número é obrigatório" {
		t.Errorf("number error = %q", errs["number"])
	}
	if _, ok := errs["neighborhood"]; ok {
		t.Errorf("unexpected neighborhood error: %q", errs["neighborhood"])
	}

	ok := models.Address{Street: "Rua das Flores", Number: "10", Neighborhood: "Centro", City: "Itapeva-SP"}
	if errs := ValidateAddress(ok); len(errs) != 0 {
		t.Fatalf("valid address produced errors: %v", errs)
	}
}

func TestValidateCEP(t *testing.T) {
	cases := []struct {
		cep  string
		want string
	}{
		{"", ""},
		{"18000-000", ""},
		{"18000000", ""},
		{"1800-000", "CEP deve estar no formato 00000-000"},
		{"abcde-fgh", "CEP deve estar no formato 00000-000"},
	}
	for _, tc := range cases {
		if got := ValidateCEP(tc.cep); got != tc.want {
			t.Errorf("ValidateCEP(%q) = %q, want %q", tc.cep, got, tc.want)
		}
	}
}

func TestValidateCheckout(t *testing.T) {
	pickup := models.CheckoutData{Name: "Ana", DeliveryType: models.DeliveryTypePickup}
	if errs := ValidateCheckout(pickup); len(errs) != 0 {
		t.Fatalf("pickup checkout produced errors: %v", errs)
	}

	// delivery without an address fails on the required address fields
	delivery := models.CheckoutData{Name: "Ana", DeliveryType: models.DeliveryTypeDelivery}
	errs := ValidateCheckout(delivery)
	for _, field := range []string{"street", "number", "neighborhood"} {
		if errs[field] == "" {
			t.Errorf("missing error for %q", field)
		}
	}

	// blank name is rejected regardless of delivery type
	errs = ValidateCheckout(models.CheckoutData{Name: "   ", DeliveryType: models.DeliveryTypePickup})
	if errs["name"] == "" {
		t.Error("blank name accepted")
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"(15) 99999-8888", "15999998888"},
		{"15 9999.8888", "1599998888"},
		{"159999988889999", "15999998888"},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCEP(t *testing.T) {
	cases := []struct{ in, want string }{
		{"18000000", "18000-000"},
		{"180", "180"},
		{"18000", "18000"},
		{"180000", "18000-0"},
		{"18000-000", "18000-000"},
		{"1800000099", "18000-000"},
	}
	for _, tc := range cases {
		if got := FormatCEP(tc.in); got != tc.want {
			t.Errorf("FormatCEP(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
