// Package account holds the canonical input model: raw export records and
// their normalized view.
package account

import (
	"strings"

	"github.com/gyaneshwarpardhi/vaultaudit/internal/classify"
)

// RawRecord is one row or object as decoded from an export file. Keys vary
// by exporter; the same concept may arrive as "SignupDate" or "signup_date".
type RawRecord map[string]string

// Alias priority lists per logical field. First present, non-empty key wins.
var (
	serviceKeys        = []string{"Service", "service"}
	categoryKeys       = []string{"Category", "category"}
	signupKeys         = []string{"SignupDate", "signup_date", "Created", "created"}
	passwordUpdateKeys = []string{"LastPasswordUpdate", "last_password_update"}
	lastLoginKeys      = []string{"LastLogin", "last_login"}
)

// Normalized is the immutable canonical view of one RawRecord. Raw date
// strings are kept alongside the parsed values so the output can echo the
// input text even when parsing failed.
type Normalized struct {
	Service  string
	Category string // never empty; falls back to classify.Uncategorized

	Signup         Date
	PasswordUpdate Date
	LastLogin      Date

	SignupRaw         string
	PasswordUpdateRaw string
	LastLoginRaw      string
}

// lookup returns the first non-empty value among the candidate keys.
func (r RawRecord) lookup(keys []string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Normalize extracts the canonical field set from rec. An explicit category
// field takes precedence over the classifier; absent or malformed fields
// degrade to absent values and never abort the record.
func Normalize(rec RawRecord, c *classify.Classifier) Normalized {
	n := Normalized{
		Service:           rec.lookup(serviceKeys),
		Category:          rec.lookup(categoryKeys),
		SignupRaw:         rec.lookup(signupKeys),
		PasswordUpdateRaw: rec.lookup(passwordUpdateKeys),
		LastLoginRaw:      rec.lookup(lastLoginKeys),
	}
	if n.Category == "" {
		n.Category = c.Classify(n.Service)
	}
	n.Signup = ParseDate(n.SignupRaw)
	n.PasswordUpdate = ParseDate(n.PasswordUpdateRaw)
	n.LastLogin = ParseDate(n.LastLoginRaw)
	return n
}
