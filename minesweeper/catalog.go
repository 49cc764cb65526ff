package minesweeper

import (
	"fmt"
)

// AchievementID is the stable key for a catalog entry. The evaluation rules
// reference achievements by these constants so a rule can never point at a
// definition that doesn't compile.
type AchievementID string

const (
	// Speed (single-submission time bounds)
	AchievementSpeedyBeginner     AchievementID = "speedy_beginner"
	AchievementSpeedyIntermediate AchievementID = "speedy_intermediate"
	AchievementSpeedyExpert       AchievementID = "speedy_expert"
	AchievementSlowAndSteady      AchievementID = "slow_and_steady"

	// Total time played
	AchievementDedicated AchievementID = "dedicated"

	// Total wins
	AchievementTasteOfVictory AchievementID = "taste_of_victory"
	AchievementChampion       AchievementID = "champion"

	// Per-level wins
	AchievementFirstSteps         AchievementID = "first_steps"
	AchievementBeginnerAdept      AchievementID = "beginner_adept"
	AchievementBeginnerMaster     AchievementID = "beginner_master"
	AchievementMovingUp           AchievementID = "moving_up"
	AchievementIntermediateAdept  AchievementID = "intermediate_adept"
	AchievementIntermediateMaster AchievementID = "intermediate_master"
	AchievementIntoTheDeep        AchievementID = "into_the_deep"
	AchievementExpertAdept        AchievementID = "expert_adept"
	AchievementExpertMaster       AchievementID = "expert_master"

	// Win streaks
	AchievementOnARoll     AchievementID = "on_a_roll"
	AchievementUnstoppable AchievementID = "unstoppable"

	// Losses
	AchievementBoom               AchievementID = "boom"
	AchievementGluttonForMines    AchievementID = "glutton_for_mines"

	// Games played
	AchievementWelcome   AchievementID = "welcome"
	AchievementRegular   AchievementID = "regular"
	AchievementCenturion AchievementID = "centurion"
)

// Achievement is one immutable catalog entry.
type Achievement struct {
	ID          AchievementID `json:"-"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Color       string        `json:"color"`
}

// Definitions is the full achievement catalog, seeded into the database at
// startup and never mutated afterwards.
var Definitions = map[AchievementID]Achievement{
	AchievementSpeedyBeginner:     {ID: AchievementSpeedyBeginner, Title: "Speedy Beginner", Description: "Win a beginner game in 20 seconds or less", Color: "#4dd0e1"},
	AchievementSpeedyIntermediate: {ID: AchievementSpeedyIntermediate, Title: "Speedy Intermediate", Description: "Win an intermediate game in 80 seconds or less", Color: "#26c6da"},
	AchievementSpeedyExpert:       {ID: AchievementSpeedyExpert, Title: "Speedy Expert", Description: "Win an expert game in 200 seconds or less", Color: "#00acc1"},
	AchievementSlowAndSteady:      {ID: AchievementSlowAndSteady, Title: "Slow & Steady", Description: "Win any game after 10 minutes or more", Color: "#8d6e63"},

	AchievementDedicated: {ID: AchievementDedicated, Title: "Dedicated", Description: "Play for a total of one hour", Color: "#7e57c2"},

	AchievementTasteOfVictory: {ID: AchievementTasteOfVictory, Title: "Taste of Victory", Description: "Win your first game", Color: "#ffd54f"},
	AchievementChampion:       {ID: AchievementChampion, Title: "Champion", Description: "Win 50 games", Color: "#ffb300"},

	AchievementFirstSteps:         {ID: AchievementFirstSteps, Title: "First Steps", Description: "Win a beginner game", Color: "#aed581"},
	AchievementBeginnerAdept:      {ID: AchievementBeginnerAdept, Title: "Beginner Adept", Description: "Win 5 beginner games", Color: "#9ccc65"},
	AchievementBeginnerMaster:     {ID: AchievementBeginnerMaster, Title: "Beginner Master", Description: "Win 20 beginner games", Color: "#7cb342"},
	AchievementMovingUp:           {ID: AchievementMovingUp, Title: "Moving Up", Description: "Win an intermediate game", Color: "#4fc3f7"},
	AchievementIntermediateAdept:  {ID: AchievementIntermediateAdept, Title: "Intermediate Adept", Description: "Win 5 intermediate games", Color: "#29b6f6"},
	AchievementIntermediateMaster: {ID: AchievementIntermediateMaster, Title: "Intermediate Master", Description: "Win 20 intermediate games", Color: "#039be5"},
	AchievementIntoTheDeep:        {ID: AchievementIntoTheDeep, Title: "Into the Deep", Description: "Win an expert game", Color: "#f06292"},
	AchievementExpertAdept:        {ID: AchievementExpertAdept, Title: "Expert Adept", Description: "Win 5 expert games", Color: "#ec407a"},
	AchievementExpertMaster:       {ID: AchievementExpertMaster, Title: "Expert Master", Description: "Win 20 expert games", Color: "#d81b60"},

	AchievementOnARoll:     {ID: AchievementOnARoll, Title: "On A Roll", Description: "Win 5 games in a row", Color: "#ff8a65"},
	AchievementUnstoppable: {ID: AchievementUnstoppable, Title: "Unstoppable", Description: "Win 10 games in a row", Color: "#ff7043"},

	AchievementBoom:            {ID: AchievementBoom, Title: "Boom!", Description: "Lose your first game", Color: "#90a4ae"},
	AchievementGluttonForMines: {ID: AchievementGluttonForMines, Title: "Glutton for Mines", Description: "Lose 50 games", Color: "#78909c"},

	AchievementWelcome:   {ID: AchievementWelcome, Title: "Welcome", Description: "Play your first game", Color: "#81c784"},
	AchievementRegular:   {ID: AchievementRegular, Title: "Regular", Description: "Play 50 games", Color: "#66bb6a"},
	AchievementCenturion: {ID: AchievementCenturion, Title: "Centurion", Description: "Play 100 games", Color: "#43a047"},
}

// OrderedDefinitions returns the catalog in rule-table order, which is the
// order achievements are seeded into the database and listed on profiles.
func OrderedDefinitions() []Achievement {
	var defs []Achievement
	for _, group := range ruleGroups {
		for _, r := range group {
			defs = append(defs, DefinitionOf(r.id))
		}
	}
	return defs
}

// DefinitionOf returns the catalog entry for an ID. The rule table and the
// catalog must stay in lock-step; a miss here is a configuration bug, so it
// panics rather than silently skipping the achievement.
func DefinitionOf(id AchievementID) Achievement {
	def, ok := Definitions[id]
	if !ok {
		panic(fmt.Sprintf("minesweeper: achievement %q referenced by rules but missing from catalog", id))
	}
	return def
}

// The rule table is static, so catalog drift is caught when the process
// starts, not on the first submission that happens to cross a threshold.
func init() {
	for _, group := range ruleGroups {
		for _, r := range group {
			DefinitionOf(r.id)
		}
	}
}
