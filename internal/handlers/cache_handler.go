package handlers

import (
	"net/http"

	"cache-service-api/internal/processor"

	"github.com/gin-gonic/gin"
)

// CreateEntryRequest represents the request payload for creating an entry
type CreateEntryRequest struct {
	Key               string `json:"key" binding:"required"`
	Value             any    `json:"value"`
	ExpirationSeconds *int64 `json:"expirationSeconds"`
}

// UpdateEntryRequest represents the request payload for updating an entry
type UpdateEntryRequest struct {
	Value             any    `json:"value"`
	ExpirationSeconds *int64 `json:"expirationSeconds"`
}

func validExpiration(c *gin.Context, seconds *int64) bool {
	if seconds != nil && *seconds < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid expirationSeconds (must be a non-negative integer in seconds)",
		})
		return false
	}
	return true
}

// CreateEntry handles POST /api/cache
// Creates a new entry; fails when the key already exists or is blank.
func CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request. Key is required.",
		})
		return
	}
	if !validExpiration(c, req.ExpirationSeconds) {
		return
	}

	resp := proc.Process(processor.Request{
		Operation:         processor.OpCreate,
		Key:               req.Key,
		Value:             req.Value,
		ExpirationSeconds: req.ExpirationSeconds,
	})
	if !resp.Success {
		c.JSON(http.StatusConflict, resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetEntry handles GET /api/cache/:key
func GetEntry(c *gin.Context) {
	resp := proc.Process(processor.Request{
		Operation: processor.OpRead,
		Key:       c.Param("key"),
	})
	if !resp.Success {
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateEntry handles PUT /api/cache/:key
func UpdateEntry(c *gin.Context) {
	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}
	if !validExpiration(c, req.ExpirationSeconds) {
		return
	}

	resp := proc.Process(processor.Request{
		Operation:         processor.OpUpdate,
		Key:               c.Param("key"),
		Value:             req.Value,
		ExpirationSeconds: req.ExpirationSeconds,
	})
	if !resp.Success {
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteEntry handles DELETE /api/cache/:key
func DeleteEntry(c *gin.Context) {
	resp := proc.Process(processor.Request{
		Operation: processor.OpDelete,
		Key:       c.Param("key"),
	})
	if !resp.Success {
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Execute handles POST /api/execute
// Accepts the raw operation envelope, including the legacy uppercase verbs,
// and returns the processor's response as-is.
func Execute(c *gin.Context) {
	var req processor.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}
	if !validExpiration(c, req.ExpirationSeconds) {
		return
	}

	resp := proc.Process(req)
	if resp.Error == processor.ErrInvalidOperation {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
