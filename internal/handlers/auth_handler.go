package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
)

// AuthHandler registers and looks up users. Passwords are stored and compared as plain text.
type AuthHandler struct {
	userRepo repositories.UserRepository
}

func NewAuthHandler(userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
	}
}

func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	req, errMsg := parseCredentials(c)
	if errMsg != "" {
		return errorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	user := models.User{
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.userRepo.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return errorResponse(c, fiber.StatusConflict, "Email already registered")
		}
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.UserResponse{
		Success: true,
		UserID:  user.ID,
		Email:   user.Email,
	})
}

func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	req, errMsg := parseCredentials(c)
	if errMsg != "" {
		return errorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	user, err := h.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	if user == nil || user.Password != req.Password {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return c.JSON(models.UserResponse{
		Success: true,
		UserID:  user.ID,
		Email:   user.Email,
	})
}

func parseCredentials(c *fiber.Ctx) (models.CredentialsRequest, string) {
	body, ok := parseJSONObject(c)
	if !ok {
		return models.CredentialsRequest{}, "No data provided"
	}

	req := models.CredentialsRequest{
		Email:    body.Get("email").String(),
		Password: body.Get("password").String(),
	}

	if req.Email == "" || req.Password == "" {
		return req, "Email and password are required"
	}

	return req, ""
}
