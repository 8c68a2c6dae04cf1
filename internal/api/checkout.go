package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"doceencanto/internal/models"
	"doceencanto/internal/storage"
	"doceencanto/internal/validation"
	"doceencanto/internal/whatsapp"
)

func (s *Server) defaultCheckout() models.CheckoutData {
	return models.CheckoutData{
		DeliveryType: models.DeliveryTypePickup,
		Address:      &models.Address{City: s.cfg.Address.DefaultCity},
	}
}

// GetCheckout returns the session's saved checkout data, falling back to the
// defaults when nothing was saved yet or the stored payload is corrupt.
func (s *Server) GetCheckout(c *gin.Context) {
	data := s.defaultCheckout()
	if payload, ok := s.store.Get(sessionID(c), storage.CheckoutKey); ok {
		if err := json.Unmarshal([]byte(payload), &data); err != nil {
			data = s.defaultCheckout()
		}
	}
	c.JSON(http.StatusOK, data)
}

// SaveCheckout overwrites the session's checkout data. The front end calls
// this on every field change, so no validation happens here; validation
// gates only the handoff itself.
func (s *Server) SaveCheckout(c *gin.Context) {
	var data models.CheckoutData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.Put(sessionID(c), storage.CheckoutKey, string(payload)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// ComposeOrder validates the checkout data, renders the order message from
// the cart snapshot and returns it with the wa.me URL the front end opens.
func (s *Server) ComposeOrder(c *gin.Context) {
	var data models.CheckoutData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := s.cartStore(c)
	items := store.Items()
	if len(items) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Seu carrinho está vazio"})
		return
	}

	if errs := validation.ValidateCheckout(data); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	// keep the session copy current so a reload shows what was submitted
	if payload, err := json.Marshal(data); err == nil {
		s.store.Put(sessionID(c), storage.CheckoutKey, string(payload))
	}

	message := whatsapp.OrderMessage(items, store.TotalPrice(), &data)
	s.monitor.RecordOrderComposed()

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"url":     whatsapp.URL(s.cfg.WhatsApp.Number, message),
	})
}

// GeneralWhatsAppLink returns the default greeting link used by the floating
// WhatsApp button.
func (s *Server) GeneralWhatsAppLink(c *gin.Context) {
	message := whatsapp.GeneralMessage()
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"url":     whatsapp.URL(s.cfg.WhatsApp.Number, message),
	})
}

// KitsWhatsAppLink returns the special-kits link: an order message when a
// kit name is given, otherwise the general kits question.
func (s *Server) KitsWhatsAppLink(c *gin.Context) {
	message := whatsapp.KitsQuestionMessage()
	if name := c.Query("name"); name != "" {
		message = whatsapp.KitOrderMessage(name)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"url":     whatsapp.URL(s.cfg.WhatsApp.Number, message),
	})
}
