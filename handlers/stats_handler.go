package handlers

import (
	"net/http"

	"davidsgames/minesweeper"
	"davidsgames/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
	hub          *services.Hub
}

func NewStatsHandler(statsService *services.StatsService, hub *services.Hub) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		hub:          hub,
	}
}

// SubmitStats receives a finished game's counters, merges them into the
// player's cumulative stats and responds with any newly earned achievements.
func (h *StatsHandler) SubmitStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var delta minesweeper.GameResult
	if err := c.ShouldBindJSON(&delta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.statsService.SubmitStats(userID.(uint), delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, achievement := range resp.NewAchievements {
		h.hub.Broadcast("achievement_unlocked", gin.H{
			"user_id":     userID.(uint),
			"achievement": achievement,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	stats, err := h.statsService.GetStats(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No stats recorded yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
