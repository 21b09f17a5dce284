package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AuthToken is one currently-valid issued token. Login appends, logout
// removes the presented token only.
type AuthToken struct {
	Token string `bson:"token" json:"token"`
}

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username" validate:"required"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Password    string             `bson:"password" json:"-" validate:"required,min=6"`
	Role        string             `bson:"role" json:"role" validate:"omitempty,oneof=admin user"`
	FirstName   string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	LastLogin   *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	Tokens      []AuthToken        `bson:"tokens" json:"-"`
}

// UserSummary is the shape returned by list/auth endpoints: everything the
// client needs, never the password hash or token list.
type UserSummary struct {
	ID        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	LastLogin *time.Time         `json:"lastLogin,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
