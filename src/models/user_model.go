package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string `json:"-" gorm:"not null"`
	FirstName      string `json:"first_name" gorm:"not null"`
	LastName       string `json:"last_name" gorm:"not null"`
	Headline       string `json:"headline"`
	Summary        string `json:"summary" gorm:"type:text"`
	Location       string `json:"location"`
	ProfilePicture string `json:"profile_picture"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type UserDto struct {
	ID             uint   `json:"_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Headline       string `json:"headline,omitempty"`
	Location       string `json:"location,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func (u *User) ToDto() UserDto {
	return UserDto{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Headline:       u.Headline,
		Location:       u.Location,
		ProfilePicture: u.ProfilePicture,
	}
}

// ProfileUpdate carries the fields a user may edit on their own profile.
// Email and password changes go through dedicated flows, never this one.
type ProfileUpdate struct {
	FirstName      *string `json:"first_name" form:"first_name"`
	LastName       *string `json:"last_name" form:"last_name"`
	Headline       *string `json:"headline" form:"headline"`
	Summary        *string `json:"summary" form:"summary"`
	Location       *string `json:"location" form:"location"`
	ProfilePicture *string `json:"profile_picture" form:"-"`
}
