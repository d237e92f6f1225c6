package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

type CreatorHandler struct {
	db *gorm.DB
}

func NewCreatorHandler(db *gorm.DB) *CreatorHandler {
	return &CreatorHandler{db: db}
}

type UpdateCreatorRequest struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

func (h *CreatorHandler) Get(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	var creator models.Creator
	if err := h.db.First(&creator, creatorID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Creator not found.")
		return
	}

	c.JSON(http.StatusOK, creator)
}

func (h *CreatorHandler) Update(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	var creator models.Creator
	if err := h.db.First(&creator, creatorID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCreatorNotFound, "Creator not found.")
		return
	}

	var req UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}

	if req.Name != nil {
		creator.Name = *req.Name
	}
	if req.Bio != nil {
		creator.Bio = *req.Bio
	}
	if req.Phone != nil {
		creator.Phone = *req.Phone
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Invalid timezone.")
			return
		}
		creator.Timezone = *req.Timezone
	}
	if req.Currency != nil {
		creator.Currency = *req.Currency
	}

	if err := h.db.Save(&creator).Error; err != nil {
		httperr.Internal(c, "failed_to_update_creator", "Could not update profile.")
		return
	}

	c.JSON(http.StatusOK, creator)
}
