package model

import "time"

// UserRole distinguishes workers, employers, and administrators.
type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleEmployer UserRole = "employer"
	RoleAdmin    UserRole = "admin"
)

// User is an account as exposed by the API.
type User struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"firstName,omitempty"`
	LastName  string       `json:"lastName,omitempty"`
	Role      UserRole     `json:"role"`
	Profile   *UserProfile `json:"profile,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// FullName renders the display name, falling back to the email address.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Email
	}
}

// UserProfile holds trade qualifications and background.
type UserProfile struct {
	Bio            string   `json:"bio,omitempty"`
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Experience     int      `json:"experience,omitempty"`
	Location       string   `json:"location,omitempty"`
	AvatarURL      string   `json:"avatarUrl,omitempty"`
}

// UpdateUserProfileRequest is a partial profile update.
type UpdateUserProfileRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Bio       string `json:"bio,omitempty"`
}
