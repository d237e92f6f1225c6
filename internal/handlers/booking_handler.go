package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vinchivii/book-savvy-studio/internal/cache"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
	"github.com/vinchivii/book-savvy-studio/internal/usecase/booking"
	"gorm.io/gorm"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db    *gorm.DB
	slots *cache.SlotCache

	cancelUC      *booking.CancelBooking
	completeUC    *booking.CompleteBooking
	listByDateUC  *booking.ListBookingsByDate
	listByMonthUC *booking.ListBookingsByMonth
}

func NewBookingHandler(
	db *gorm.DB,
	slots *cache.SlotCache,
	cancelUC *booking.CancelBooking,
	completeUC *booking.CompleteBooking,
	listByDateUC *booking.ListBookingsByDate,
	listByMonthUC *booking.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		db:            db,
		slots:         slots,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var creator models.Creator
	if err := h.db.First(&creator, creatorID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Creator not found.")
		return
	}

	date, err := parseDateInCreator(&creator, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), creatorID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(200, bookings)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	bookings, err := h.listByMonthUC.Execute(c.Request.Context(), creatorID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(200, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), creatorID, uint(bookingID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeBookingNotFound):
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
		case httperr.IsBusiness(err, httperr.CodeInvalidState):
			httperr.BadRequest(c, httperr.CodeInvalidState, "Booking cannot be cancelled.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel booking.")
		}
		return
	}

	// the slot is free again
	if h.slots != nil {
		h.slots.Invalidate(c.Request.Context(), creatorID)
	}

	c.JSON(200, b)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *BookingHandler) Complete(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking.")
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), creatorID, uint(bookingID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeBookingNotFound):
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
		case httperr.IsBusiness(err, httperr.CodeInvalidState):
			httperr.BadRequest(c, httperr.CodeInvalidState, "Booking cannot be completed.")
		default:
			httperr.Internal(c, "failed_to_complete_booking", "Could not complete booking.")
		}
		return
	}

	c.JSON(200, b)
}
