package handlers

import (
	"net/http"

	"davidsgames/minesweeper"
	"davidsgames/services"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
	hub          *services.Hub
}

func NewScoreHandler(scoreService *services.ScoreService, hub *services.Hub) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
		hub:          hub,
	}
}

func (h *ScoreHandler) SubmitScore(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.scoreService.SubmitScore(userID.(uint), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast("score_submitted", score)

	c.JSON(http.StatusCreated, gin.H{"score": score})
}

// GetScores returns the top-20 scoreboard for every difficulty level.
func (h *ScoreHandler) GetScores(c *gin.Context) {
	scores, err := h.scoreService.AllTopScores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

// GetLevels serves the static difficulty configuration the game client
// builds its boards from.
func (h *ScoreHandler) GetLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"levels": minesweeper.Boards})
}
