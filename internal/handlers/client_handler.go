package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/httpresp"
	"github.com/vinchivii/book-savvy-studio/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// LIST CLIENTS (CREATOR DASHBOARD)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	creatorID, ok := creatorIDParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_creator_id", "Invalid creator.")
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("creator_id = ?", creatorID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}
