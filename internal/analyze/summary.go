package analyze

import (
	"fmt"
	"math"

	"github.com/gyaneshwarpardhi/vaultaudit/internal/risk"
)

// Age bucket names, also the JSON keys of account_age_distribution.
const (
	BucketUnderOneYear = "<1 year"
	BucketOneToThree   = "1-3 years"
	BucketOverThree    = ">3 years"
)

// Insight messages for the password and inactivity conditions. The
// high-risk insight carries a count and is formatted inline.
const (
	insightStalePasswords = "Multiple accounts have stale passwords. Rotation is recommended."
	insightInactive       = "Some accounts have been inactive for a long time. Consider closing them."
)

// EnrichedAccount is the per-record output view. Date fields echo the raw
// input text, including text that failed to parse.
type EnrichedAccount struct {
	Service            string     `json:"service"`
	Category           string     `json:"category"`
	Created            string     `json:"created"`
	LastPasswordUpdate string     `json:"last_password_update"`
	LastLogin          string     `json:"last_login"`
	RiskScore          int        `json:"risk_score"`
	RiskLevel          risk.Level `json:"risk_level"`
	RiskNotes          []string   `json:"risk_notes"`
}

// Summary is the full report returned to the caller.
type Summary struct {
	TotalAccounts      int                `json:"total_accounts"`
	AccountsByCategory map[string]int     `json:"accounts_by_category"`
	OldestAccount      *string            `json:"oldest_account"`
	AccountsPerYear    map[int]int        `json:"accounts_per_year"`
	PasswordWarnings   []string           `json:"password_hygiene_warnings"`
	InactiveAccounts   []string           `json:"inactive_accounts"`
	AgeDistribution    map[string]int     `json:"account_age_distribution"`
	EnrichedAccounts   []EnrichedAccount  `json:"enriched_accounts"`
	RiskBreakdown      map[risk.Level]int `json:"risk_breakdown"`
	RiskAverage        float64            `json:"risk_average"`
	Insights           []string           `json:"insights"`
}

// buildSummary turns the final accumulator into the output structure. The
// state is consumed exactly once; nothing here mutates it.
func buildSummary(st *state) *Summary {
	s := &Summary{
		TotalAccounts:      len(st.enriched),
		AccountsByCategory: st.categoryCounts,
		AccountsPerYear:    st.yearCounts,
		PasswordWarnings:   st.passwordWarnings,
		InactiveAccounts:   st.inactiveAccounts,
		AgeDistribution:    st.ageBuckets,
		EnrichedAccounts:   st.enriched,
		RiskBreakdown:      st.riskBuckets,
		Insights:           []string{},
	}

	if st.oldestSignup.Valid {
		formatted := st.oldestSignup.Time.Format("2006-01-02")
		s.OldestAccount = &formatted
	}

	if n := len(st.enriched); n > 0 {
		avg := float64(st.scoreTotal) / float64(n)
		s.RiskAverage = math.Round(avg*100) / 100
	}

	if high := st.riskBuckets[risk.LevelHigh]; high > 0 {
		s.Insights = append(s.Insights, fmt.Sprintf("%d high-risk account(s) found.", high))
	}
	if len(st.passwordWarnings) > 0 {
		s.Insights = append(s.Insights, insightStalePasswords)
	}
	if len(st.inactiveAccounts) > 0 {
		s.Insights = append(s.Insights, insightInactive)
	}
	return s
}
