package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vinchivii/book-savvy-studio/internal/cache"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
)

type AvailabilityHandler struct {
	db    *gorm.DB
	slots *cache.SlotCache
}

func NewAvailabilityHandler(db *gorm.DB, slots *cache.SlotCache) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, slots: slots}
}

type AvailabilityRuleConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AvailabilityUpdateRequest struct {
	Rules []AvailabilityRuleConfig `json:"rules" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	var rules []models.AvailabilityRule
	if err := h.db.
		Where("creator_id = ?", creatorID).
		Order("weekday ASC, start_time ASC").
		Find(&rules).Error; err != nil {

		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	c.JSON(http.StatusOK, rules)
}

// Update replaces the whole weekly schedule in one shot. Several rules
// per weekday are allowed (split shifts); each window must be a valid
// HH:MM pair with start before end.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, r := range req.Rules {
		start, errStart := time.Parse("15:04", r.StartTime)
		end, errEnd := time.Parse("15:04", r.EndTime)
		if errStart != nil || errEnd != nil || !end.After(start) {
			httperr.BadRequest(c, "invalid_time_window", "Each window needs HH:MM times with start before end.")
			return
		}
	}

	if err := h.db.Where("creator_id = ?", creatorID).Delete(&models.AvailabilityRule{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_availability", "Could not save availability.")
		return
	}

	var toCreate []models.AvailabilityRule
	for _, r := range req.Rules {
		rule := models.AvailabilityRule{
			CreatorID: creatorID,
			Weekday:   r.Weekday,
			Active:    r.Active,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		}
		toCreate = append(toCreate, rule)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_availability", "Could not save availability.")
			return
		}
	}

	if h.slots != nil {
		h.slots.Invalidate(c.Request.Context(), creatorID)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
