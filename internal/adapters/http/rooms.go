package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkeye/Chat/internal/app/orch"
	"github.com/dkeye/Chat/internal/domain"
)

// Read-only projections of the membership registry, for ops and debugging.
// The WS event stream remains the source clients actually follow.

func handleRoomList(o *orch.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"rooms": o.Registry.ActiveRooms(),
		})
	}
}

func handleRoomUsers(o *orch.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		room := domain.RoomName(c.Param("room"))
		c.JSON(http.StatusOK, gin.H{
			"users": o.Registry.UsersInRoom(room),
		})
	}
}

type announceRequest struct {
	Text string `json:"text" binding:"required"`
}

// handleAnnounce lets an operator push an Admin notice to every connected
// client, same shape as the server-generated notices.
func handleAnnounce(o *orch.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req announceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid text"})
			return
		}
		o.Announce(req.Text)
		c.JSON(http.StatusOK, gin.H{"status": "sent"})
	}
}
