package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// Pastikan user_id di path sama dengan user di token (akses data milik sendiri).
func EnsureOwner(c *fiber.Ctx, paramKey string) (uuid.UUID, error) {
	userID, err := GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	raw := strings.TrimSpace(c.Params(paramKey))
	if raw == "" {
		return userID, nil
	}
	pathID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada path tidak valid")
	}
	if pathID != userID {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
	return userID, nil
}
