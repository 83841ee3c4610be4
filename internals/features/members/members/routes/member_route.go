// file: internals/features/members/members/routes/member_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "ciaocraft_backend/internals/features/members/members/controller"
	authMiddleware "ciaocraft_backend/internals/middlewares/auth"
	"ciaocraft_backend/internals/middlewares"
)

func MemberRoutes(r fiber.Router, db *gorm.DB) {
	h := memberController.NewMemberController(db)

	members := r.Group("/members")
	{
		members.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
		members.Post("/login", middlewares.LoginRateLimiter(), h.Login)

		members.Get("/me", authMiddleware.MemberAuth(), h.GetMe)
		members.Patch("/me", authMiddleware.MemberAuth(), h.UpdateMe)
	}
}
