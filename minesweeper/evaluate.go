package minesweeper

import (
	"davidsgames/models"
)

// A rule awards one achievement when its condition holds. Cumulative rules
// look at the post-merge stat totals; speed rules look at the submitted
// delta, because they ask whether this particular game met a time bound.
type rule struct {
	id        AchievementID
	qualifies func(stat *models.MinesweeperStat, delta GameResult) bool
}

// Rule groups in evaluation order. Each group is ordered by ascending
// threshold, so a submission that crosses several tiers at once returns
// them lowest-first. Every achievement belongs to exactly one rule, which
// keeps the union duplicate-free.
var ruleGroups = [][]rule{
	speedRules,
	timePlayedRules,
	winRules,
	streakRules,
	lossRules,
	playRules,
}

var speedRules = []rule{
	{AchievementSpeedyBeginner, func(_ *models.MinesweeperStat, d GameResult) bool {
		return d.BeginnerGamesWon > 0 && d.TimePlayed <= 20
	}},
	{AchievementSpeedyIntermediate, func(_ *models.MinesweeperStat, d GameResult) bool {
		return d.IntermediateGamesWon > 0 && d.TimePlayed <= 80
	}},
	{AchievementSpeedyExpert, func(_ *models.MinesweeperStat, d GameResult) bool {
		return d.ExpertGamesWon > 0 && d.TimePlayed <= 200
	}},
	{AchievementSlowAndSteady, func(_ *models.MinesweeperStat, d GameResult) bool {
		return d.GamesWon > 0 && d.TimePlayed >= 600
	}},
}

var timePlayedRules = []rule{
	{AchievementDedicated, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.TimePlayed >= models.SecondsPerHour
	}},
}

var winRules = []rule{
	{AchievementTasteOfVictory, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.GamesWon >= 1
	}},
	{AchievementChampion, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.GamesWon >= 50
	}},
	{AchievementFirstSteps, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.BeginnerGamesWon >= 1
	}},
	{AchievementBeginnerAdept, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.BeginnerGamesWon >= 5
	}},
	{AchievementBeginnerMaster, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.BeginnerGamesWon >= 20
	}},
	{AchievementMovingUp, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.IntermediateGamesWon >= 1
	}},
	{AchievementIntermediateAdept, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.IntermediateGamesWon >= 5
	}},
	{AchievementIntermediateMaster, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.IntermediateGamesWon >= 20
	}},
	{AchievementIntoTheDeep, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.ExpertGamesWon >= 1
	}},
	{AchievementExpertAdept, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.ExpertGamesWon >= 5
	}},
	{AchievementExpertMaster, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.ExpertGamesWon >= 20
	}},
}

var streakRules = []rule{
	{AchievementOnARoll, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.WinStreak >= 5
	}},
	{AchievementUnstoppable, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.WinStreak >= 10
	}},
}

var lossRules = []rule{
	{AchievementBoom, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.GamesPlayed-s.GamesWon >= 1
	}},
	{AchievementGluttonForMines, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.GamesPlayed-s.GamesWon >= 50
	}},
}

var playRules = []rule{
	{AchievementWelcome, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.GamesPlayed >= 1
	}},
	{AchievementRegular, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.GamesPlayed >= 50
	}},
	{AchievementCenturion, func(s *models.MinesweeperStat, _ GameResult) bool {
		return s.GamesPlayed >= 100
	}},
}

// Evaluate returns the achievements newly earned by a submission, in rule
// order. stat must already reflect the merged delta (ApplyResult has run).
// Achievements in held are suppressed, which is what makes re-running a
// submission safe: earned achievements are never returned twice.
func Evaluate(held map[AchievementID]bool, stat *models.MinesweeperStat, delta GameResult) []Achievement {
	var earned []Achievement
	for _, group := range ruleGroups {
		for _, r := range group {
			if held[r.id] {
				continue
			}
			if r.qualifies(stat, delta) {
				earned = append(earned, DefinitionOf(r.id))
			}
		}
	}
	return earned
}
