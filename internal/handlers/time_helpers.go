package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinchivii/book-savvy-studio/internal/models"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

func locationFromCreator(creator *models.Creator) *time.Location {
	if creator != nil {
		return timezone.Location(creator.Timezone)
	}
	return timezone.Location("")
}

func parseDateInCreator(creator *models.Creator, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromCreator(creator),
	)
}

// parseStartInstant accepts the RFC3339 start the public API uses, or a
// date+time pair interpreted in the creator's timezone.
func parseStartInstant(
	creator *models.Creator,
	startStr string,
	dateStr string,
	timeStr string,
) (time.Time, error) {

	if startStr != "" {
		return time.Parse(time.RFC3339, startStr)
	}

	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromCreator(creator),
	)
}

func creatorIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("creatorId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
