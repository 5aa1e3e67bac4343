// Package http wires the Fiber routes to the use cases.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msmepassport/msme-passport-api/internal/application/auth"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	BusinessUC  *usecase.BusinessUseCase
	AdminUC     *usecase.AdminUseCase
	PassportUC  *usecase.PassportUseCase
	CollabUC    *usecase.CollaborationUseCase
	AffiliateUC *usecase.AffiliateUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify-email", authHandler.VerifyEmail)
	authGroup.Post("/resend-verification", authHandler.ResendVerification)

	// Passport verification (public: anyone may scan a code or follow a link)
	passportHandler := NewPassportHandler(deps.PassportUC)
	api.Post("/verify-business", passportHandler.VerifyScan)
	api.Get("/verify-business/:passportId", passportHandler.VerifyByPassportID)

	// Protected routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Own profile
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/me", userHandler.Me)
	users.Patch("/me", userHandler.UpdateProfile)
	users.Get("/me/business-eligibility", userHandler.CreateBusinessEligibility)

	// Businesses
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses := protected.Group("/businesses")
	businesses.Post("/", businessHandler.Create)
	businesses.Get("/", businessHandler.ListMine)
	businesses.Get("/:id", businessHandler.Get)
	businesses.Patch("/:id", businessHandler.Update)
	businesses.Delete("/:id", businessHandler.Delete)
	businesses.Post("/:id/archive", businessHandler.Archive)
	businesses.Post("/:id/simulate-payment", businessHandler.SimulatePayment)
	businesses.Get("/:id/verification-eligibility", businessHandler.VerificationEligibility)

	// Passport issuance and artifacts
	businesses.Post("/:id/passport", passportHandler.Issue)
	businesses.Get("/:id/passport/qr", passportHandler.QRCodePNG)
	businesses.Get("/:id/passport/card", passportHandler.CardPDF)

	// Collaborations
	collabHandler := NewCollaborationHandler(deps.CollabUC)
	invitations := protected.Group("/invitations")
	invitations.Post("/", collabHandler.SendInvitation)
	invitations.Get("/", collabHandler.ListMyInvitations)
	invitations.Post("/:id/accept", collabHandler.Accept)
	invitations.Post("/:id/reject", collabHandler.Reject)
	businesses.Get("/:id/invitations", collabHandler.ListBusinessInvitations)
	businesses.Get("/:id/collaborators", collabHandler.ListCollaborators)
	protected.Delete("/collaborations/:id", collabHandler.RemoveCollaborator)

	// Affiliates (read for any logged-in user)
	affiliateHandler := NewAffiliateHandler(deps.AffiliateUC)
	affiliates := protected.Group("/affiliates")
	affiliates.Get("/", affiliateHandler.List)
	affiliates.Get("/:id", affiliateHandler.Get)

	// Admin (token must carry the admin claim)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin := protected.Group("/admin", RequireAdmin())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users/:id/verify", adminHandler.SetUserVerified)
	admin.Get("/businesses", adminHandler.ListBusinesses)
	admin.Post("/businesses/:id/verify", adminHandler.VerifyBusiness)
	admin.Post("/businesses/:id/reject", adminHandler.SetRejection)
	admin.Post("/affiliates", affiliateHandler.Create)
}
