package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetAuditEvents handles GET /api/audit/events
// Returns recent cache lifecycle events, newest first.
// Optional query param: limit (default 50, max 500).
func GetAuditEvents(c *gin.Context) {
	if recorder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Audit trail is disabled",
		})
		return
	}

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	records, err := recorder.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch audit events",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": records,
		"count":  len(records),
		"limit":  limit,
	})
}
