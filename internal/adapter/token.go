package adapter

import (
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/utils"
)

// IsValidToken reports whether token is a JWT whose "exp" claim lies in the
// future. The signature is not verified. Empty, malformed and exp-less
// tokens are invalid.
func IsValidToken(token string) bool {
	return isValidTokenAt(token, time.Now())
}

func isValidTokenAt(token string, now time.Time) bool {
	if token == "" {
		return false
	}

	exp, err := utils.TokenExpiry(token)
	if err != nil {
		return false
	}

	return exp.After(now)
}
