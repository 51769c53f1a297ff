package service

import (
	"time"

	"github.com/MKhiriev/go-stream-panel/models"
)

// Evaluate decides a sign-in attempt against the given roster snapshot.
//
// The first record matching both email and password by case-sensitive
// equality wins; store order resolves duplicate credential pairs
// deterministically. A matched record still fails when its status is Off or
// its expiry is at or before now, and both conditions surface as the same
// expired rejection. No match at all is a wrong-credentials rejection,
// deliberately silent about whether the email or the password was wrong.
//
// The function is pure: it never touches session state, so callers persist
// only accepted outcomes.
func Evaluate(email, password string, roster []models.User, now time.Time, adminEmail string) models.Outcome {
	for _, user := range roster {
		if user.Email != email || user.Password != password {
			continue
		}

		if user.Status != models.StatusLive || !user.ExpireTime.After(now) {
			return models.Reject(models.AccountExpired)
		}

		return models.Accept(user, user.Email == adminEmail)
	}

	return models.Reject(models.WrongCredentials)
}
