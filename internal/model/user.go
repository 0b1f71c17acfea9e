package model

import (
	"context"
	"time"
)

// Role enumerates user roles.
type Role string

const (
	// RoleUser is assigned to every self-registered account.
	RoleUser Role = "user"
	// RoleAdmin may manage other accounts.
	RoleAdmin Role = "admin"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByExternalID(ctx context.Context, externalID string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
	LinkExternalID(ctx context.Context, id int64, externalID string) (User, error)
	SetRefreshTokenHash(ctx context.Context, id int64, hash *string) error
	List(ctx context.Context) ([]User, error)
	Page(ctx context.Context, query PageQuery) ([]User, int64, error)
	SearchByName(ctx context.Context, name string) ([]User, error)
}

// SkillSource lists the raw skill column of every profile that has one.
type SkillSource interface {
	SkillValues(ctx context.Context) ([]string, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID               int64     `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	PasswordHash     *string   `db:"password_hash"`
	ExternalID       *string   `db:"google_id"`
	Role             Role      `db:"role"`
	RefreshTokenHash *string   `db:"refresh_token_hash"`
	Phone            *string   `db:"phone"`
	BirthDay         *string   `db:"birth_day"`
	Gender           *string   `db:"gender"`
	Skill            *string   `db:"skill"`
	Certification    *string   `db:"certification"`
	Avatar           *string   `db:"avatar"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Profile is the public view of a user. It never carries secrets.
type Profile struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	BirthDay      *string   `json:"birthDay"`
	Gender        *string   `json:"gender"`
	Role          Role      `json:"role"`
	Skill         *string   `json:"skill"`
	Certification *string   `json:"certification"`
	Avatar        *string   `json:"avatar"`
	GoogleID      *string   `json:"googleId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Profile projects the user onto its public fields.
func (u User) Profile() Profile {
	return Profile{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		BirthDay:      u.BirthDay,
		Gender:        u.Gender,
		Role:          u.Role,
		Skill:         u.Skill,
		Certification: u.Certification,
		Avatar:        u.Avatar,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// OwnProfile is the profile shown to the user themself. It adds the linked
// Google account id.
func (u User) OwnProfile() Profile {
	p := u.Profile()
	p.GoogleID = u.ExternalID
	return p
}

// Profiles projects a slice of users.
func Profiles(users []User) []Profile {
	out := make([]Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}

// ProfileFields holds the optional profile attributes shared by sign-up,
// admin creation and updates.
type ProfileFields struct {
	Phone         *string `json:"phone,omitempty"`
	BirthDay      *string `json:"birthDay,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	Skill         *string `json:"skill,omitempty"`
	Certification *string `json:"certification,omitempty"`
}

// Apply copies the set fields onto the user.
func (f ProfileFields) Apply(u *User) {
	if f.Phone != nil {
		u.Phone = f.Phone
	}
	if f.BirthDay != nil {
		u.BirthDay = f.BirthDay
	}
	if f.Gender != nil {
		u.Gender = f.Gender
	}
	if f.Skill != nil {
		u.Skill = f.Skill
	}
	if f.Certification != nil {
		u.Certification = f.Certification
	}
}

// NewUser is an admin request to create an account.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"passWord" validate:"required,min=6,maxbytes=72"`
	Role     Role   `json:"role" validate:"omitempty,oneof=user admin"`
	ProfileFields
}

// ProfileUpdate is a partial update of a user.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Role  *Role   `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	ProfileFields
}

// ProfilePage is one page of profiles.
type ProfilePage = Page[Profile]
