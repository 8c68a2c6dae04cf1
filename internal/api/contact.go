package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doceencanto/internal/models"
	"doceencanto/internal/validation"
)

// SubmitContact validates the contact form and forwards it to the relay.
// Relay failures come back as one retryable notification; the front end
// keeps the form filled so the user can try again.
func (s *Server) SubmitContact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form.Phone = validation.FormatPhone(form.Phone)
	if errs := validation.ValidateContactForm(form); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	if err := s.relay.Submit(c.Request.Context(), form); err != nil {
		log.Printf("contact: relay failed: %v", err)
		s.monitor.RecordContactSubmission("failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Não foi possível enviar agora. Tente novamente ou entre em contato pelo WhatsApp.",
		})
		return
	}

	s.monitor.RecordContactSubmission("sent")
	c.JSON(http.StatusOK, gin.H{"message": "Mensagem enviada com sucesso! Entraremos em contato em breve."})
}
