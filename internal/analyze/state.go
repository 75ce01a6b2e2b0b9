package analyze

import (
	"time"

	"github.com/gyaneshwarpardhi/vaultaudit/internal/account"
	"github.com/gyaneshwarpardhi/vaultaudit/internal/metrics"
	"github.com/gyaneshwarpardhi/vaultaudit/internal/risk"
)

// state is the running accumulator for one pipeline pass. It is created
// empty, mutated once per record in input order, handed to buildSummary,
// and then discarded. Never shared across runs.
type state struct {
	categoryCounts   map[string]int
	yearCounts       map[int]int
	ageBuckets       map[string]int
	passwordWarnings []string
	inactiveAccounts []string
	riskBuckets      map[risk.Level]int
	enriched         []EnrichedAccount
	oldestSignup     account.Date
	scoreTotal       int
}

func newState() *state {
	riskBuckets := make(map[risk.Level]int, len(risk.Levels))
	for _, lvl := range risk.Levels {
		riskBuckets[lvl] = 0
	}
	return &state{
		categoryCounts: map[string]int{},
		yearCounts:     map[int]int{},
		ageBuckets: map[string]int{
			BucketUnderOneYear: 0,
			BucketOneToThree:   0,
			BucketOverThree:    0,
		},
		passwordWarnings: []string{},
		inactiveAccounts: []string{},
		riskBuckets: riskBuckets,
		enriched:    []EnrichedAccount{},
	}
}

// accumulate folds one normalized account plus its assessment into the
// state. The password-warning cutoff here is the hygiene threshold in days,
// independent of the scorer's stale-password rule on the same field.
func (st *state) accumulate(acc account.Normalized, a risk.Assessment, h Hygiene, now time.Time) {
	st.categoryCounts[acc.Category]++

	if acc.Signup.Valid {
		if !st.oldestSignup.Valid || acc.Signup.Time.Before(st.oldestSignup.Time) {
			st.oldestSignup = acc.Signup
		}
		st.yearCounts[acc.Signup.Time.Year()]++
		switch years := account.Years(acc.Signup.Time, now); {
		case years < 1:
			st.ageBuckets[BucketUnderOneYear]++
		case years <= 3: // exactly 3 years lands here, not in >3
			st.ageBuckets[BucketOneToThree]++
		default:
			st.ageBuckets[BucketOverThree]++
		}
	}

	if acc.PasswordUpdate.Valid && account.Days(acc.PasswordUpdate.Time, now) > h.PasswordWarningDays {
		st.passwordWarnings = append(st.passwordWarnings, acc.Service)
	}
	if acc.LastLogin.Valid && account.Days(acc.LastLogin.Time, now) > h.InactiveWarningDays {
		st.inactiveAccounts = append(st.inactiveAccounts, acc.Service)
	}

	st.riskBuckets[a.Level]++
	st.scoreTotal += a.Score
	metrics.AccountsByRisk.WithLabelValues(string(a.Level)).Inc()

	notes := a.Notes
	if notes == nil {
		notes = []string{}
	}
	st.enriched = append(st.enriched, EnrichedAccount{
		Service:            acc.Service,
		Category:           acc.Category,
		Created:            acc.SignupRaw,
		LastPasswordUpdate: acc.PasswordUpdateRaw,
		LastLogin:          acc.LastLoginRaw,
		RiskScore:          a.Score,
		RiskLevel:          a.Level,
		RiskNotes:          notes,
	})
}
