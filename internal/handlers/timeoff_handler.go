package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vinchivii/book-savvy-studio/internal/cache"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/httpresp"
	"github.com/vinchivii/book-savvy-studio/internal/models"
)

type TimeOffHandler struct {
	db    *gorm.DB
	slots *cache.SlotCache
}

func NewTimeOffHandler(db *gorm.DB, slots *cache.SlotCache) *TimeOffHandler {
	return &TimeOffHandler{db: db, slots: slots}
}

type CreateTimeOffRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason"`
}

func (h *TimeOffHandler) List(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	var periods []models.TimeOff
	if err := h.db.
		Where("creator_id = ?", creatorID).
		Order("start_time ASC").
		Find(&periods).Error; err != nil {

		httperr.Internal(c, "failed_to_list_time_off", "Could not list time off.")
		return
	}

	httpresp.OK(c, periods)
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	if !req.EndTime.After(req.StartTime) {
		httperr.BadRequest(c, "invalid_time_window", "End must be after start.")
		return
	}

	period := models.TimeOff{
		CreatorID: creatorID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&period).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_off", "Could not save time off.")
		return
	}

	if h.slots != nil {
		h.slots.Invalidate(c.Request.Context(), creatorID)
	}

	httpresp.Created(c, period)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	id := c.Param("id")

	res := h.db.
		Where("id = ? AND creator_id = ?", id, creatorID).
		Delete(&models.TimeOff{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_time_off", "Could not delete time off.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "time_off_not_found", "Time off not found.")
		return
	}

	if h.slots != nil {
		h.slots.Invalidate(c.Request.Context(), creatorID)
	}

	c.Status(http.StatusNoContent)
}
