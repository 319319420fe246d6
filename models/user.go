package models

// UserRole is the role the hospital API assigns to an account.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleDoctor  UserRole = "doctor"
	RoleNurse   UserRole = "nurse"
	RoleStaff   UserRole = "staff"
	RolePatient UserRole = "patient"
)

// User is the last known identity of the signed-in account. It is persisted
// locally next to the token pair and restored on start-up.
type User struct {
	// ID is the server-side identifier of the account.
	ID int64 `json:"id"`

	// Username is the login the account signs in with.
	Username string `json:"username"`

	// Email is the contact address reported by the server. Optional.
	Email string `json:"email,omitempty"`

	// Name is the display name. Optional; falls back to Username in the UI.
	Name string `json:"name,omitempty"`

	// Role is the account role (patient, doctor, ...).
	Role UserRole `json:"role"`

	// Avatar is an optional avatar URL.
	Avatar string `json:"avatar,omitempty"`

	// Department is the hospital department the account belongs to.
	Department string `json:"department,omitempty"`

	// Permissions lists coarse-grained permissions granted to the account.
	Permissions []string `json:"permissions,omitempty"`
}

// DisplayName returns Name when set and Username otherwise.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Merge returns a copy of u with every non-zero field of patch applied.
func (u User) Merge(patch User) User {
	if patch.ID != 0 {
		u.ID = patch.ID
	}
	if patch.Username != "" {
		u.Username = patch.Username
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Role != "" {
		u.Role = patch.Role
	}
	if patch.Avatar != "" {
		u.Avatar = patch.Avatar
	}
	if patch.Department != "" {
		u.Department = patch.Department
	}
	if patch.Permissions != nil {
		u.Permissions = patch.Permissions
	}
	return u
}

// Credentials is the request body of POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
