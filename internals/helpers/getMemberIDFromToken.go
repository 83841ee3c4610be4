package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil member_id dari c.Locals("member_id") (diisi middleware auth).
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetMemberIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, "member_id", "Member belum login")
}

// Ambil vendor_id dari c.Locals("vendor_id")
func GetVendorIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, "vendor_id", "Vendor belum login")
}

func localsUUID(c *fiber.Ctx, key, notLoggedIn string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, notLoggedIn)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, notLoggedIn)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, notLoggedIn)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
	}
}
