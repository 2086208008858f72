package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bft-labs/wireletter/internal/domain"
	"github.com/bft-labs/wireletter/pkg/log"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSubmit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	var record map[string]any
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid JSON body",
		})
		return
	}
	if record == nil {
		record = map[string]any{}
	}

	receipt, err := s.processor.Process(c.Request.Context(), record)
	if err != nil {
		if domain.IsClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		s.logger.Error("wire transfer failed", log.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to process wire transfer",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"referenceId": receipt.ReferenceID,
	})
}
