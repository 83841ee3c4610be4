// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"ciaocraft_backend/internals/configs"
	"ciaocraft_backend/internals/constants"
	helper "ciaocraft_backend/internals/helpers"
)

// MemberAuth: wajib login sebagai member, set Locals("member_id")
func MemberAuth() fiber.Handler {
	return requireRole(constants.RoleMember, "member_id")
}

// VendorAuth: wajib login sebagai vendor, set Locals("vendor_id")
func VendorAuth() fiber.Handler {
	return requireRole(constants.RoleVendor, "vendor_id")
}

// AdminAuth: platform administrator (role claim, BUKAN admin password —
// gate password lama sudah diganti role-based credential)
func AdminAuth() fiber.Handler {
	return requireRole(constants.RoleAdmin, "admin_id")
}

func requireRole(role, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak ditemukan")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// validasi exp (dengan sedikit leeway utk clock skew)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		gotRole, _ := claims["role"].(string)
		if gotRole != role {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Role tidak sesuai")
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing subject")
		}

		c.Locals(localsKey, sub)
		c.Locals("role", gotRole)
		helper.SetRawAccessToken(c, tokenString)
		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("exp claim invalid")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return fmt.Errorf("token expired at %s", exp)
	}
	return nil
}
