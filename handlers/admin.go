package handlers

import (
	"surplus-claims-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, admin *services.AdminService) {
	api := app.Group("/api/admin")

	api.Get("/dashboard", admin.GetDashboard)
	api.Get("/transactions", admin.GetTransactions)

	// Package CRUD (no delete; packages are closed via status, never removed)
	api.Get("/packages", admin.GetPackages)
	api.Post("/packages", admin.CreatePackage)
	api.Put("/packages/:id", admin.UpdatePackage)

	api.Get("/partners", admin.GetPartners)
	api.Post("/partners", admin.CreatePartner)

	api.Get("/support-tickets", admin.GetSupportTickets)
	api.Post("/support-tickets/:id/reply", admin.ReplyToTicket)

	api.Get("/claim-progress", admin.GetClaimProgress)
	api.Put("/claim-progress/:id", admin.UpdateClaimProgress)
}
