package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"davidsgames/minesweeper"
	"davidsgames/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// TopScoresLimit is how many scores the scoreboard shows per level.
const TopScoresLimit = 20

const scoreCacheTTL = 5 * time.Minute

type ScoreService struct {
	db    *gorm.DB
	redis *redis.Client // optional; nil disables caching
}

func NewScoreService(db *gorm.DB, redis *redis.Client) *ScoreService {
	return &ScoreService{db: db, redis: redis}
}

type SubmitScoreRequest struct {
	Time  int    `json:"time" binding:"required,min=1"`
	Level string `json:"level" binding:"required"`
}

// ScoreEntry is a scoreboard row with the player's display name resolved.
type ScoreEntry struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Time            int       `json:"time"`
	Level           string    `json:"level"`
	SubmittedAt     time.Time `json:"submitted_at"`
	UserDisplayName string    `json:"user_display_name"`
}

// SubmitScore records one finished game's time for the scoreboard.
func (s *ScoreService) SubmitScore(userID uint, req *SubmitScoreRequest) (*ScoreEntry, error) {
	level, err := minesweeper.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}

	score := models.MinesweeperScore{
		UserID:      userID,
		Time:        req.Time,
		Level:       string(level),
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.db.Create(&score).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&score, score.ID).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(level)

	return entryFromScore(&score), nil
}

// TopScores returns the best scores for a level, fastest first, ties broken
// by earlier submission.
func (s *ScoreService) TopScores(level minesweeper.Level, limit int) ([]ScoreEntry, error) {
	// Only the standard scoreboard page is cached.
	if limit == TopScoresLimit {
		if entries, ok := s.cachedScores(level); ok {
			return entries, nil
		}
	}

	var scores []models.MinesweeperScore
	err := s.db.Where("level = ?", string(level)).
		Order("time, submitted_at").
		Limit(limit).
		Preload("User").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ScoreEntry, 0, len(scores))
	for i := range scores {
		entries = append(entries, *entryFromScore(&scores[i]))
	}

	if limit == TopScoresLimit {
		s.cacheScores(level, entries)
	}

	return entries, nil
}

// AllTopScores returns the top-20 scoreboard for every level.
func (s *ScoreService) AllTopScores() (map[minesweeper.Level][]ScoreEntry, error) {
	scores := make(map[minesweeper.Level][]ScoreEntry, len(minesweeper.Levels))
	for _, level := range minesweeper.Levels {
		entries, err := s.TopScores(level, TopScoresLimit)
		if err != nil {
			return nil, err
		}
		scores[level] = entries
	}
	return scores, nil
}

func entryFromScore(score *models.MinesweeperScore) *ScoreEntry {
	return &ScoreEntry{
		ID:              score.ID,
		UserID:          score.UserID,
		Time:            score.Time,
		Level:           score.Level,
		SubmittedAt:     score.SubmittedAt,
		UserDisplayName: score.User.DisplayName,
	}
}

func scoreCacheKey(level minesweeper.Level) string {
	return fmt.Sprintf("minesweeper:scores:%s", level)
}

func (s *ScoreService) cachedScores(level minesweeper.Level) ([]ScoreEntry, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(context.Background(), scoreCacheKey(level)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error getting scores for %s: %v", level, err)
		}
		return nil, false
	}

	var entries []ScoreEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		log.Printf("Failed to decode cached scores for %s: %v", level, err)
		return nil, false
	}

	return entries, true
}

func (s *ScoreService) cacheScores(level minesweeper.Level, entries []ScoreEntry) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}

	if err := s.redis.Set(context.Background(), scoreCacheKey(level), data, scoreCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache scores for %s: %v", level, err)
	}
}

func (s *ScoreService) invalidateCache(level minesweeper.Level) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(context.Background(), scoreCacheKey(level)).Err(); err != nil {
		log.Printf("Failed to invalidate score cache for %s: %v", level, err)
	}
}
