// Package whatsapp composes the order handoff message and the wa.me URL the
// storefront opens for the customer. The message layout is a fixed contract:
// the tests pin it byte for byte.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"doceencanto/internal/models"
	"doceencanto/internal/money"
)

// DefaultNumber is the confectionery's WhatsApp number, overridable in the
// config file.
const DefaultNumber = "5515999999999"

// InstagramURL links the shop's Instagram profile.
const InstagramURL = "https://www.instagram.com/doceencanto-atanasio-dev/"

// OrderMessage renders the cart and checkout details as the text the
// customer sends on WhatsApp to confirm the order.
//
// The total is taken from the caller (the cart store's running total), not
// recomputed from the items. Iteration order of items is preserved.
func OrderMessage(items []models.CartItem, total decimal.Decimal, checkout *models.CheckoutData) string {
	var b strings.Builder
	b.WriteString("Olá! Gostaria de fazer um pedido 🍬\n\n")

	if checkout != nil && checkout.Name != "" {
		fmt.Fprintf(&b, "*Nome:* %s\n", checkout.Name)
	}
	if checkout != nil && checkout.Phone != "" {
		fmt.Fprintf(&b, "*Telefone:* %s\n", checkout.Phone)
	}

	b.WriteString("\n*📋 Pedido:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "▸ %dx %s (%s)\n", item.Quantity, item.Name, money.FormatBRL(item.Subtotal()))
		if item.Observation != "" {
			fmt.Fprintf(&b, "   _Obs: %s_\n", item.Observation)
		}
	}

	fmt.Fprintf(&b, "\n*💰 Total: %s*\n", money.FormatBRL(total))

	if checkout != nil && checkout.DeliveryType != "" {
		label := "Entrega"
		if checkout.DeliveryType == models.DeliveryTypePickup {
			label = "Retirada no local"
		}
		fmt.Fprintf(&b, "\n*🚚 Tipo:* %s\n", label)
	}

	if checkout != nil && checkout.DeliveryType == models.DeliveryTypeDelivery && checkout.Address != nil {
		fmt.Fprintf(&b, "*📍 Endereço:*\n%s\n", FormatAddress(*checkout.Address))
	}

	if checkout != nil && checkout.Observations != "" {
		fmt.Fprintf(&b, "\n*📝 Observações:* %s\n", checkout.Observations)
	}

	b.WriteString("\nAguardo confirmação! 🙏")
	return b.String()
}

// FormatAddress renders the delivery address block of the order message.
func FormatAddress(address models.Address) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s - %s", address.Street, address.Number, address.Neighborhood)
	if address.City != "" {
		b.WriteString("\n" + address.City)
	}
	if address.CEP != "" {
		b.WriteString(" - CEP: " + address.CEP)
	}
	if address.Reference != "" {
		b.WriteString("\nRef: " + address.Reference)
	}
	return b.String()
}

// URL builds the wa.me link carrying the percent-encoded message.
func URL(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

// GeneralMessage is the default greeting used by the floating WhatsApp
// button and the failed-contact fallback.
func GeneralMessage() string {
	return "Olá! Gostaria de saber mais sobre os doces 🍬"
}

// KitOrderMessage greets the shop with an order intent for a specific kit.
func KitOrderMessage(kitName string) string {
	return fmt.Sprintf("Olá! Quero encomendar o Kit %s. 🎁", kitName)
}

// KitsQuestionMessage greets the shop with a question about the special
// kits.
func KitsQuestionMessage() string {
	return "Olá! Gostaria de tirar uma dúvida sobre os Kits Especiais. 🎁"
}
