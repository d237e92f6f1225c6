package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vinchivii/book-savvy-studio/internal/cache"
	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
	"github.com/vinchivii/book-savvy-studio/internal/usecase/booking"
	"github.com/vinchivii/book-savvy-studio/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db       *gorm.DB
	slots    *cache.SlotCache
	getSlots *booking.GetAvailability
	createUC *booking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	slots *cache.SlotCache,
	getSlots *booking.GetAvailability,
	createUC *booking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		slots:    slots,
		getSlots: getSlots,
		createUC: createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`

	// Either an RFC3339 start instant, or date ("YYYY-MM-DD") plus
	// time ("HH:mm") in the creator's timezone.
	Start string `json:"start"`
	Date  string `json:"date"`
	Time  string `json:"time"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// CREATOR PAGE
////////////////////////////////////////////////////////

func (h *PublicHandler) GetCreatorPage(c *gin.Context) {
	slug := c.Param("slug")

	var creator models.Creator
	if err := h.db.Where("slug = ?", slug).First(&creator).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Page not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("creator_id = ? AND active = true", creator.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_load_page", "Could not load page.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creator":  creator,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var creator models.Creator
	if err := h.db.Where("slug = ?", slug).First(&creator).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Page not found.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("creator_id = ? AND active = true", creator.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creator":  creator,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}

	var creator models.Creator
	if err := h.db.Where("slug = ?", slug).First(&creator).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Page not found.")
		return
	}

	date, err := parseDateInCreator(&creator, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	if h.slots != nil {
		if cached, ok := h.slots.Get(c.Request.Context(), creator.ID, uint(serviceID), dateStr); ok {
			c.JSON(http.StatusOK, gin.H{
				"date":       dateStr,
				"time_slots": cached,
			})
			return
		}
	}

	slots, err := h.getSlots.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			CreatorID: creator.ID,
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
			httperr.BadRequest(c, httperr.CodeServiceNotFound, "Invalid service.")
			return
		}

		httperr.Internal(c, "availability_failed", "Could not compute time slots.")
		return
	}

	if h.slots != nil {
		h.slots.Set(c.Request.Context(), creator.ID, uint(serviceID), dateStr, slots)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       dateStr,
		"time_slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	var creator models.Creator
	if err := h.db.Where("slug = ?", slug).First(&creator).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Page not found.")
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	if !validators.IsValidEmail(req.ClientEmail) || !validators.IsEmailDomainValid(req.ClientEmail) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	start, err := parseStartInstant(&creator, req.Start, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		booking.CreateBookingInput{
			CreatorID:   creator.ID,
			ServiceID:   req.ServiceID,
			Start:       start,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			ClientPhone: req.ClientPhone,
			Notes:       req.Notes,
		},
	)

	// A booking can exist even when err is set (payment initiation
	// failed after the row was written); it occupies its slot either way.
	if b != nil && h.slots != nil {
		h.slots.Invalidate(c.Request.Context(), creator.ID)
	}

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking_id":   b.ID,
		"checkout_url": b.CheckoutURL,
		"booking":      b,
	})
}
