package models

import (
	"net/mail"
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *SignupInput) Validate() []FieldError {
	var errs []FieldError

	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)

	if n := len([]rune(in.Name)); n < 2 || n > 50 {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be between 2 and 50 characters"})
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return errs
}

func (in *LoginInput) Validate() []FieldError {
	var errs []FieldError

	in.Email = NormalizeEmail(in.Email)
	if in.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	}
	if in.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}
	return errs
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthPayload is returned by signup and login.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
