package domain

// UserRole gates the admin views. This is demo-grade role switching, not
// authentication.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid reports whether the role is one of the two known roles.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserProfile is the display profile derived from the role at login.
type UserProfile struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Avatar        string   `json:"avatar"`
	JoinDate      string   `json:"joinDate"`
	LoyaltyPoints int      `json:"loyaltyPoints"`
	Role          UserRole `json:"role"`
}

// AuthState is the transient session identity. Not persisted anywhere.
type AuthState struct {
	IsLoggedIn bool         `json:"isLoggedIn"`
	Role       UserRole     `json:"role,omitempty"`
	User       *UserProfile `json:"user,omitempty"`
}

// Clone copies the state including the profile pointer target.
func (a AuthState) Clone() AuthState {
	out := a
	if a.User != nil {
		user := *a.User
		out.User = &user
	}
	return out
}

// ProfileForRole synthesizes the demo profile shown after login.
func ProfileForRole(role UserRole) UserProfile {
	if role == RoleAdmin {
		return UserProfile{
			Name:          "ZENKIRA",
			Email:         "admin@zenkira.net",
			Avatar:        "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
			JoinDate:      "Feb 2026",
			LoyaltyPoints: 999999,
			Role:          RoleAdmin,
		}
	}
	return UserProfile{
		Name:          "Operative_Neo",
		Email:         "user@zenkira.net",
		Avatar:        "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
		JoinDate:      "Feb 2026",
		LoyaltyPoints: 0,
		Role:          RoleUser,
	}
}
