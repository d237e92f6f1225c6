package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vinchivii/book-savvy-studio/internal/httperr"
)

// mapBookingErrors translates booking-creation business codes into HTTP
// rejections. Everything except NotFound tells the client to pick
// another time and re-request slots.
func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeCreatorNotFound):
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Page not found.")
	case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
		httperr.BadRequest(c, httperr.CodeServiceNotFound, "Service not found.")
	case httperr.IsBusiness(err, httperr.CodeTooSoon):
		httperr.BadRequest(c, httperr.CodeTooSoon, "That time is too soon. Please pick another.")
	case httperr.IsBusiness(err, httperr.CodeOutsideAvailability):
		httperr.BadRequest(c, httperr.CodeOutsideAvailability, "That time is outside the schedule.")
	case httperr.IsBusiness(err, httperr.CodeTimeConflict):
		httperr.Conflict(c, httperr.CodeTimeConflict, "That time was just taken. Please pick another.")
	case httperr.IsBusiness(err, httperr.CodePaymentInitFailed):
		httperr.Write(c, 502, httperr.CodePaymentInitFailed, "Could not start checkout. Please try again.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
	}
}
