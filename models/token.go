package models

// Session is the access/refresh token pair persisted on the client.
//
// A Session is created on successful login or refresh and cleared on logout
// or on an unrecoverable refresh failure.
type Session struct {
	// AccessToken is the short-lived bearer credential attached to API calls.
	AccessToken string `json:"accessToken"`

	// RefreshToken is the long-lived credential exchanged for a new pair.
	RefreshToken string `json:"refreshToken"`
}

// IsComplete reports whether both tokens are present.
func (s Session) IsComplete() bool {
	return s.AccessToken != "" && s.RefreshToken != ""
}

// IsEmpty reports whether neither token is present.
func (s Session) IsEmpty() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}

// AuthResponse is the response body of POST /auth/login.
type AuthResponse struct {
	// Access is the issued access token.
	Access string `json:"access"`

	// Refresh is the issued refresh token.
	Refresh string `json:"refresh"`

	// User is the identity of the signed-in account.
	User User `json:"user"`
}

// Session returns the token pair carried by the login response.
func (r AuthResponse) Session() Session {
	return Session{AccessToken: r.Access, RefreshToken: r.Refresh}
}

// RefreshRequest is the request body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResult is the response body of POST /auth/refresh.
type RefreshResult struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *RefreshUser `json:"user,omitempty"`
	Partner      *Partner     `json:"partner,omitempty"`
}

// Session returns the token pair carried by the refresh response.
func (r RefreshResult) Session() Session {
	return Session{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
}

// RefreshUser is the optional account summary returned by a refresh.
type RefreshUser struct {
	ID          string `json:"id,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
	PartnerID   string `json:"partnerId,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

// Partner is the optional organisation summary returned by a refresh.
type Partner struct {
	ID               string `json:"id,omitempty"`
	FullName         string `json:"fullName,omitempty"`
	Email            string `json:"email,omitempty"`
	SubscriptionType string `json:"subscriptionType,omitempty"`
	Credits          int    `json:"credits,omitempty"`
	LicenseSeats     int    `json:"licenseSeats,omitempty"`
	LicenseExpiresAt string `json:"licenseExpiresAt,omitempty"`
}
