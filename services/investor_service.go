package services

import (
	"errors"
	"path/filepath"

	"surplus-claims-platform/models"
	"surplus-claims-platform/store"
	"surplus-claims-platform/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// InvestorService serves the investor-facing portal API.
type InvestorService struct {
	Store   store.Store
	Clock   clockwork.Clock
	Uploads *utils.Storage
}

func NewInvestorService(st store.Store, clock clockwork.Clock, uploads *utils.Storage) *InvestorService {
	return &InvestorService{Store: st, Clock: clock, Uploads: uploads}
}

// seedReturns is the fixed returns summary shown on every investor
// dashboard. Real return computation is out of scope; these figures come
// from the platform's example dataset.
var seedReturns = models.ReturnsSummary{
	YTD: models.ReturnsBreakdown{
		Dividends:    2184,
		Appreciation: 3250,
		AdvisoryFees: -125,
		Total:        5309,
	},
	AllTime: models.ReturnsBreakdown{
		Dividends:    8750,
		Appreciation: 5000,
		AdvisoryFees: -500,
		Total:        13250,
	},
}

// GetActivePackages lists packages open for investment.
func (s *InvestorService) GetActivePackages(c *fiber.Ctx) error {
	packages, err := s.activePackages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch packages"})
	}
	return c.JSON(packages)
}

func (s *InvestorService) activePackages() ([]models.InvestmentPackage, error) {
	packages, err := s.Store.Packages()
	if err != nil {
		return nil, err
	}
	active := make([]models.InvestmentPackage, 0, len(packages))
	for _, p := range packages {
		if p.Status == "Active" {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *InvestorService) GetPackageByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid package id"})
	}

	pkg, err := s.Store.PackageByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch package"})
	}
	return c.JSON(pkg)
}

// GetDashboard assembles one investor's view: their account, their
// transactions, the fixed returns summary and the packages open for
// investment.
func (s *InvestorService) GetDashboard(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	user, err := s.Store.UserByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch user"})
	}

	investments, err := s.Store.TransactionsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch transactions"})
	}
	if investments == nil {
		investments = []models.Transaction{}
	}

	available, err := s.activePackages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch packages"})
	}

	return c.JSON(models.InvestorDashboard{
		User:              user,
		Investments:       investments,
		Returns:           seedReturns,
		AvailablePackages: available,
	})
}

// CreateInvestmentRequest is the body of POST /api/investor/invest.
type CreateInvestmentRequest struct {
	UserID      int     `json:"user_id"`
	UserName    string  `json:"user_name"`
	PackageID   int     `json:"package_id"`
	PackageName string  `json:"package_name"`
	Amount      float64 `json:"amount"`
	PartnerID   string  `json:"partner_id"`
	PartnerName string  `json:"partner_name"`
}

// CreateInvestment records a pending transaction. Commission uses the flat
// platform rate; the investment is dated to the current day.
func (s *InvestorService) CreateInvestment(c *fiber.Ctx) error {
	var req CreateInvestmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.UserID == 0 || req.PackageID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id and package_id are required"})
	}
	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be a positive number"})
	}

	partnerID := req.PartnerID
	if partnerID == "" {
		partnerID = "P001"
	}
	partnerName := req.PartnerName
	if partnerName == "" {
		partnerName = "Direct"
	}

	transaction := models.Transaction{
		UserID:      req.UserID,
		UserName:    req.UserName,
		PackageID:   req.PackageID,
		PackageName: req.PackageName,
		Amount:      req.Amount,
		Status:      "Pending",
		Date:        s.Clock.Now().Format(dateLayout),
		PartnerID:   partnerID,
		PartnerName: partnerName,
		Commission:  req.Amount * models.PlatformCommissionRate,
	}
	if err := s.Store.InsertTransaction(&transaction); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create transaction"})
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

// CreateSupportTicketRequest is the body of POST /api/investor/support-tickets.
type CreateSupportTicketRequest struct {
	Subject   string `json:"subject"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	Message   string `json:"message"`
}

// CreateSupportTicket opens a ticket. Status is always "Open"; priority and
// category fall back to defaults when omitted.
func (s *InvestorService) CreateSupportTicket(c *fiber.Ctx) error {
	var req CreateSupportTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.Subject == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "subject and message are required"})
	}

	if req.Priority == "" {
		req.Priority = "Medium"
	}
	if req.Category == "" {
		req.Category = "General"
	}

	ticket := models.SupportTicket{
		Subject:     req.Subject,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		Status:      "Open",
		Priority:    req.Priority,
		Category:    req.Category,
		CreatedDate: s.Clock.Now().Format(dateLayout),
		Message:     req.Message,
	}
	if err := s.Store.InsertTicket(&ticket); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create ticket"})
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// UploadTicketAttachment stores a supporting document for an existing
// ticket and records its URL on the ticket.
func (s *InvestorService) UploadTicketAttachment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid ticket id"})
	}

	ticket, err := s.Store.TicketByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ticket not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch ticket"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	ext := filepath.Ext(file.Filename)
	key := "tickets/" + uuid.NewString() + ext
	url, err := s.Uploads.Save(file, key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store attachment"})
	}

	ticket.Attachments = append(ticket.Attachments, url)
	if err := s.Store.SaveTicket(ticket); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save attachment"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "url": url})
}
