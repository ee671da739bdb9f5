package handlers

import (
	"surplus-claims-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupInvestorRoutes(app *fiber.App, investor *services.InvestorService) {
	api := app.Group("/api/investor")

	api.Get("/packages", investor.GetActivePackages)
	api.Get("/packages/:id", investor.GetPackageByID)
	api.Get("/dashboard/:user_id", investor.GetDashboard)

	api.Post("/invest", investor.CreateInvestment)

	api.Post("/support-tickets", investor.CreateSupportTicket)
	api.Post("/support-tickets/:id/attachments", investor.UploadTicketAttachment)
}
