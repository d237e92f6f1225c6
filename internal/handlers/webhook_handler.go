package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/usecase/booking"
)

// ======================================================
// PAYMENT WEBHOOK
// ======================================================

type WebhookHandler struct {
	confirmUC *booking.ConfirmPayment
}

func NewWebhookHandler(confirmUC *booking.ConfirmPayment) *WebhookHandler {
	return &WebhookHandler{confirmUC: confirmUC}
}

// Mercado Pago notification body. The provider also mirrors type and id
// in query params; both shapes are accepted.
type paymentNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Payment responds 200 for everything it processed or deliberately
// ignored; the provider retries non-2xx responses aggressively.
func (h *WebhookHandler) Payment(c *gin.Context) {
	var note paymentNotification
	if err := c.ShouldBindJSON(&note); err != nil {
		note.Type = c.Query("type")
		note.Data.ID = c.Query("data.id")
	}

	if note.Type != "payment" || note.Data.ID == "" {
		// topic we don't handle (merchant orders, plan updates, ...)
		c.Status(http.StatusOK)
		return
	}

	if err := h.confirmUC.Execute(c.Request.Context(), note.Data.ID); err != nil {
		if httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
			// not ours (e.g. another environment), ack so it stops retrying
			log.Printf("payment webhook: no booking for payment %s", note.Data.ID)
			c.Status(http.StatusOK)
			return
		}

		log.Printf("payment webhook error: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
