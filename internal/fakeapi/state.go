package fakeapi

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/config"
	"github.com/MKhiriev/go-recovery-companion/internal/utils"
	"github.com/MKhiriev/go-recovery-companion/models"
	"github.com/google/uuid"
)

// refreshGrant is an outstanding refresh token.
type refreshGrant struct {
	userID    int64
	expiresAt time.Time
}

// Failure is a canned error answer injected through the State hooks.
type Failure struct {
	Status int
	Detail string
	Errors []string
}

// State is the mutable world of the fake API: accounts, patient records,
// outstanding tokens, counters and test hooks. It is safe for concurrent use.
type State struct {
	signKey    string
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time

	mu            sync.Mutex
	accounts      map[string]account
	records       map[int64]*patientRecord
	accessTokens  map[string]int64
	refreshTokens map[string]refreshGrant

	loginCount   int
	refreshCount int

	forcedUnauthorized int
	refreshFailure     *Failure
	nextFailure        *Failure
	warnings           []string
}

// NewState returns a State seeded with the demo accounts. Every account
// signs in with [DefaultPassword].
func NewState(cfg config.FakeAPIConfig) (*State, error) {
	accounts, err := seedAccounts()
	if err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}

	s := &State{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		accessTTL:     cfg.AccessTokenDuration,
		refreshTTL:    cfg.RefreshTokenDuration,
		now:           time.Now,
		accounts:      make(map[string]account),
		records:       make(map[int64]*patientRecord),
		accessTokens:  make(map[string]int64),
		refreshTokens: make(map[string]refreshGrant),
	}

	for _, acc := range accounts {
		s.accounts[acc.user.Username] = acc
		s.records[acc.user.ID] = seedRecord(acc.user)
	}

	return s, nil
}

// authenticate checks credentials and issues a new token pair.
func (s *State) authenticate(username, password string) (models.AuthResponse, error) {
	s.mu.Lock()
	s.loginCount++
	acc, ok := s.accounts[username]
	s.mu.Unlock()

	// bcrypt is slow, keep it outside the lock
	if !ok || !utils.CheckPasswordHash(password, acc.passwordHash) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	access, refresh, err := s.issuePairLocked(acc.user.ID)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Access: access, Refresh: refresh, User: acc.user}, nil
}

// rotate exchanges a refresh token for a new pair. The presented token is
// consumed even when the exchange fails afterwards.
func (s *State) rotate(refreshToken string) (models.RefreshResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshCount++

	if s.refreshFailure != nil {
		f := *s.refreshFailure
		s.refreshFailure = nil
		return models.RefreshResult{}, &f
	}

	grant, ok := s.refreshTokens[refreshToken]
	if !ok {
		return models.RefreshResult{}, ErrInvalidRefreshToken
	}
	delete(s.refreshTokens, refreshToken)
	if !grant.expiresAt.After(s.now()) {
		return models.RefreshResult{}, ErrInvalidRefreshToken
	}

	access, refresh, err := s.issuePairLocked(grant.userID)
	if err != nil {
		return models.RefreshResult{}, err
	}

	result := models.RefreshResult{AccessToken: access, RefreshToken: refresh}
	if user, found := s.userLocked(grant.userID); found {
		result.User = &models.RefreshUser{
			ID:       fmt.Sprint(user.ID),
			FullName: user.Name,
			Role:     string(user.Role),
		}
	}

	return result, nil
}

// authorize validates an access token and returns its user ID.
func (s *State) authorize(accessToken string) (int64, error) {
	userID, err := utils.ValidateAndParseJWTToken(accessToken, s.signKey, s.issuer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTokenExpiredOrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.forcedUnauthorized > 0 {
		s.forcedUnauthorized--
		return 0, ErrTokenExpiredOrInvalid
	}
	if _, ok := s.accessTokens[accessToken]; !ok {
		return 0, ErrTokenExpiredOrInvalid
	}

	return userID, nil
}

func (s *State) issuePairLocked(userID int64) (string, string, error) {
	access, err := utils.GenerateJWTToken(s.issuer, userID, s.accessTTL, s.signKey)
	if err != nil {
		return "", "", fmt.Errorf("issue access token: %w", err)
	}
	refresh := uuid.NewString()

	s.accessTokens[access] = userID
	s.refreshTokens[refresh] = refreshGrant{userID: userID, expiresAt: s.now().Add(s.refreshTTL)}

	return access, refresh, nil
}

func (s *State) userLocked(userID int64) (models.User, bool) {
	for _, acc := range s.accounts {
		if acc.user.ID == userID {
			return acc.user, true
		}
	}
	return models.User{}, false
}

// record runs fn on the patient record of userID under the state lock.
func (s *State) record(userID int64, fn func(rec *patientRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok {
		return ErrNoPatientRecord
	}
	return fn(rec)
}

// takeFailure returns and clears the failure injected for the next
// protected request.
func (s *State) takeFailure() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.nextFailure
	s.nextFailure = nil
	return f
}

// takeWarnings returns and clears the warnings injected for the next
// successful response.
func (s *State) takeWarnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.warnings
	s.warnings = nil
	return w
}

// ── Hooks ───────────────────────────────────────────────────────────────────

// RevokeAccessTokens invalidates every access token issued so far. Refresh
// tokens stay valid, so the next protected request triggers a refresh.
func (s *State) RevokeAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.accessTokens)
}

// RevokeRefreshTokens invalidates every outstanding refresh token.
func (s *State) RevokeRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.refreshTokens)
}

// ForceUnauthorized makes the next n protected requests fail with 401
// regardless of the token they carry.
func (s *State) ForceUnauthorized(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forcedUnauthorized = n
}

// FailNextRefresh makes the next refresh call answer with f.
func (s *State) FailNextRefresh(f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshFailure = &f
}

// FailNext makes the next authorized patient request answer with f.
func (s *State) FailNext(f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextFailure = &f
}

// WarnNext attaches warnings to the next successful object response.
func (s *State) WarnNext(warnings ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.warnings = slices.Clone(warnings)
}

// LoginCount returns the number of login attempts served.
func (s *State) LoginCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loginCount
}

// RefreshCount returns the number of refresh calls served.
func (s *State) RefreshCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshCount
}

func (f *Failure) Error() string {
	return fmt.Sprintf("injected failure %d: %s", f.Status, f.Detail)
}
