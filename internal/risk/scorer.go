// Package risk scores accounts with additive, threshold-triggered rules on
// account age, password staleness, and inactivity.
package risk

import (
	"fmt"
	"time"

	"github.com/gyaneshwarpardhi/vaultaudit/internal/account"
)

// Level is the coarse risk classification derived from the score.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Levels lists all levels in ascending severity.
var Levels = []Level{LevelLow, LevelMedium, LevelHigh}

// Points awarded per triggered rule.
const (
	oldAccountPoints    = 2
	stalePasswordPoints = 3
	inactivePoints      = 2
)

// Thresholds are the rule cutoffs in years. The scorer's stale-password
// cutoff is deliberately distinct from the aggregator's 365-day warning
// cutoff on the same field; the two must not be unified.
type Thresholds struct {
	OldAccountYears    float64
	StalePasswordYears float64
	InactiveYears      float64
}

// DefaultThresholds returns the stock cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OldAccountYears:    5,
		StalePasswordYears: 2,
		InactiveYears:      2,
	}
}

// Assessment is the outcome of scoring one account. Notes holds one reason
// string per triggered rule, in rule order.
type Assessment struct {
	Score int
	Level Level
	Notes []string
}

// Scorer evaluates the rule set against an account's dates. Pure and
// deterministic; absent dates never contribute.
type Scorer struct {
	t Thresholds
}

// NewScorer builds a Scorer with the given cutoffs.
func NewScorer(t Thresholds) *Scorer {
	return &Scorer{t: t}
}

// Score applies all rules independently; every rule may fire on the same
// account. Ages use 365.25-day years relative to now.
func (s *Scorer) Score(signup, passwordUpdate, lastLogin account.Date, now time.Time) Assessment {
	var a Assessment
	if signup.Valid && account.Years(signup.Time, now) > s.t.OldAccountYears {
		a.Score += oldAccountPoints
		a.Notes = append(a.Notes, fmt.Sprintf("Old account >%gy", s.t.OldAccountYears))
	}
	if passwordUpdate.Valid && account.Years(passwordUpdate.Time, now) > s.t.StalePasswordYears {
		a.Score += stalePasswordPoints
		a.Notes = append(a.Notes, fmt.Sprintf("Password stale >%gy", s.t.StalePasswordYears))
	}
	if lastLogin.Valid && account.Years(lastLogin.Time, now) > s.t.InactiveYears {
		a.Score += inactivePoints
		a.Notes = append(a.Notes, fmt.Sprintf("Inactive >%gy", s.t.InactiveYears))
	}
	a.Level = levelFor(a.Score)
	return a
}

func levelFor(score int) Level {
	switch {
	case score >= 5:
		return LevelHigh
	case score >= 2:
		return LevelMedium
	default:
		return LevelLow
	}
}
