package controllers

import (
	"dressify/middleware"
	"dressify/models"
	"dressify/store"
	"dressify/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Signup - POST /api/auth/signup
func (h *Handler) Signup(c *fiber.Ctx) error {
	var in models.SignupInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if errs := in.Validate(); len(errs) > 0 {
		return models.Validation(errs)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return models.Internal("Server error during signup", err)
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: hash}
	if err := h.users.Create(c.UserContext(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return &models.AppError{Kind: models.DuplicateKey, Message: "User already exists with this email", Err: err}
		}
		return models.Internal("Server error during signup", err)
	}

	h.log.Info("user signed up", "user_id", user.ID)
	return h.issueToken(c, fiber.StatusCreated, "User created successfully", user)
}

// Login - POST /api/auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var in models.LoginInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if errs := in.Validate(); len(errs) > 0 {
		return models.Validation(errs)
	}

	user, err := h.users.GetByEmail(c.UserContext(), in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.NewError(models.Unauthorized, "Invalid credentials")
		}
		return models.Internal("Server error during login", err)
	}
	if !utils.CheckPassword(user.Password, in.Password) {
		return models.NewError(models.Unauthorized, "Invalid credentials")
	}

	return h.issueToken(c, fiber.StatusOK, "Login successful", *user)
}

// Me - GET /api/auth/me
func (h *Handler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.UserContext(), middleware.Auth(c).UserID)
	if err != nil {
		return storeError(err, "User not found", "Server error getting user")
	}
	return c.JSON(models.Success("", user))
}

func (h *Handler) issueToken(c *fiber.Ctx, status int, message string, user models.User) error {
	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		return models.Internal("Token generation failed", err)
	}
	return c.Status(status).JSON(models.Success(message, models.AuthPayload{Token: token, User: user}))
}
