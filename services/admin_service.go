package services

import (
	"errors"
	"sort"

	"surplus-claims-platform/models"
	"surplus-claims-platform/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jonboulle/clockwork"
)

const dateLayout = "2006-01-02"

// AdminService serves the administrative console API. The clock is injected
// so date-stamping paths are deterministic under test.
type AdminService struct {
	Store store.Store
	Clock clockwork.Clock
}

func NewAdminService(st store.Store, clock clockwork.Clock) *AdminService {
	return &AdminService{Store: st, Clock: clock}
}

// GetDashboard aggregates headline metrics, the last five transactions and
// the top five partners by sales. Sales windows are computed from the clock;
// the investor/partner growth figures are placeholders pending a real
// analytics source.
func (s *AdminService) GetDashboard(c *fiber.Ctx) error {
	users, err := s.Store.Users()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch users"})
	}
	packages, err := s.Store.Packages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch packages"})
	}
	transactions, err := s.Store.Transactions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch transactions"})
	}
	partners, err := s.Store.Partners()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch partners"})
	}
	now := s.Clock.Now()
	today := now.Format(dateLayout)
	weekStart := now.AddDate(0, 0, -6).Format(dateLayout)
	yearStart := now.Format("2006") + "-01-01"

	var salesToday, salesWeek, salesYear float64
	for _, t := range transactions {
		if t.Date == today {
			salesToday += t.Amount
		}
		// Dates are ISO strings, so string order is date order.
		if t.Date >= weekStart && t.Date <= today {
			salesWeek += t.Amount
		}
		if t.Date >= yearStart && t.Date <= today {
			salesYear += t.Amount
		}
	}

	recent := transactions
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	top := make([]models.Partner, len(partners))
	copy(top, partners)
	// Stable keeps insertion order on equal sales.
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalSales > top[j].TotalSales
	})
	if len(top) > 5 {
		top = top[:5]
	}

	return c.JSON(models.AdminDashboard{
		Metrics: models.DashboardMetrics{
			TotalInvestors:    len(users),
			TotalPackages:     len(packages),
			NewInvestorsToday: 2,
			NewInvestorsWeek:  8,
			NewInvestorsMonth: 34,
			TotalSalesToday:   salesToday,
			TotalSalesWeek:    salesWeek,
			TotalSalesYear:    salesYear,
			TotalPartners:     len(partners),
			NewPartnersToday:  0,
			NewPartnersWeek:   1,
			NewPartnersMonth:  3,
		},
		RecentSales: recent,
		TopPartners: top,
	})
}

func (s *AdminService) GetTransactions(c *fiber.Ctx) error {
	transactions, err := s.Store.Transactions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch transactions"})
	}
	return c.JSON(transactions)
}

func (s *AdminService) GetPackages(c *fiber.Ctx) error {
	packages, err := s.Store.Packages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch packages"})
	}
	return c.JSON(packages)
}

// CreatePackage appends a new package. Status is always "Active" regardless
// of the request; the slug is derived from the title.
func (s *AdminService) CreatePackage(c *fiber.Ctx) error {
	var pkg models.InvestmentPackage
	if err := c.BodyParser(&pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if pkg.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	pkg.Slug = slug.Make(pkg.Title)
	pkg.Status = "Active"
	if err := s.Store.InsertPackage(&pkg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create package"})
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

// UpdatePackageRequest carries a partial package update; nil fields are
// left unchanged.
type UpdatePackageRequest struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	RiskLevel       *string  `json:"risk_level,omitempty"`
	ExpectedReturn  *float64 `json:"expected_return,omitempty"`
	Duration        *string  `json:"duration,omitempty"`
	MinInvestment   *float64 `json:"min_investment,omitempty"`
	MaxInvestment   *float64 `json:"max_investment,omitempty"`
	FundingProgress *float64 `json:"funding_progress,omitempty"`
	RaisedAmount    *float64 `json:"raised_amount,omitempty"`
	TargetAmount    *float64 `json:"target_amount,omitempty"`
	Status          *string  `json:"status,omitempty"`
	State           *string  `json:"state,omitempty"`
	ClaimType       *string  `json:"claim_type,omitempty"`
	CommissionRate  *float64 `json:"commission_rate,omitempty"`
}

func (s *AdminService) UpdatePackage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid package id"})
	}

	var req UpdatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	pkg, err := s.Store.PackageByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch package"})
	}

	if req.Title != nil {
		pkg.Title = *req.Title
		pkg.Slug = slug.Make(*req.Title)
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.RiskLevel != nil {
		pkg.RiskLevel = *req.RiskLevel
	}
	if req.ExpectedReturn != nil {
		pkg.ExpectedReturn = *req.ExpectedReturn
	}
	if req.Duration != nil {
		pkg.Duration = *req.Duration
	}
	if req.MinInvestment != nil {
		pkg.MinInvestment = *req.MinInvestment
	}
	if req.MaxInvestment != nil {
		pkg.MaxInvestment = *req.MaxInvestment
	}
	if req.FundingProgress != nil {
		pkg.FundingProgress = *req.FundingProgress
	}
	if req.RaisedAmount != nil {
		pkg.RaisedAmount = *req.RaisedAmount
	}
	if req.TargetAmount != nil {
		pkg.TargetAmount = *req.TargetAmount
	}
	if req.Status != nil {
		pkg.Status = *req.Status
	}
	if req.State != nil {
		pkg.State = *req.State
	}
	if req.ClaimType != nil {
		pkg.ClaimType = *req.ClaimType
	}
	if req.CommissionRate != nil {
		pkg.CommissionRate = *req.CommissionRate
	}

	if err := s.Store.SavePackage(pkg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update package"})
	}
	return c.JSON(pkg)
}

func (s *AdminService) GetPartners(c *fiber.Ctx) error {
	partners, err := s.Store.Partners()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch partners"})
	}
	return c.JSON(partners)
}

// CreatePartner registers a sales partner with zeroed totals and a
// freshly stamped join date. The store assigns the next "P%03d" id.
func (s *AdminService) CreatePartner(c *fiber.Ctx) error {
	var partner models.Partner
	if err := c.BodyParser(&partner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if partner.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	partner.Status = "Active"
	partner.TotalSales = 0
	partner.TotalCommission = 0
	partner.JoinedDate = s.Clock.Now().Format(dateLayout)
	if err := s.Store.InsertPartner(&partner); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create partner"})
	}
	return c.Status(fiber.StatusCreated).JSON(partner)
}

func (s *AdminService) GetSupportTickets(c *fiber.Ctx) error {
	tickets, err := s.Store.Tickets()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch tickets"})
	}
	return c.JSON(tickets)
}

type replyRequest struct {
	Message string `json:"message"`
}

// ReplyToTicket appends a reply to the ticket's reply log and moves the
// ticket to "In Progress".
func (s *AdminService) ReplyToTicket(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid ticket id"})
	}

	var req replyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	ticket, err := s.Store.TicketByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ticket not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch ticket"})
	}

	ticket.Status = "In Progress"
	ticket.Replies = append(ticket.Replies, models.TicketReply{
		ID:      uuid.NewString(),
		Message: req.Message,
		Date:    s.Clock.Now().Format(dateLayout),
	})
	if err := s.Store.SaveTicket(ticket); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save reply"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Reply sent successfully"})
}

func (s *AdminService) GetClaimProgress(c *fiber.Ctx) error {
	progress, err := s.Store.ClaimProgress()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch claim progress"})
	}
	return c.JSON(progress)
}

type updateClaimProgressRequest struct {
	CurrentStage *int `json:"current_stage"`
}

// UpdateClaimProgress moves a package's disbursement tracker to the given
// stage. Completion dates already on record are preserved; see
// models.ClaimProgress.AdvanceTo.
func (s *AdminService) UpdateClaimProgress(c *fiber.Ctx) error {
	packageID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid package id"})
	}

	var req updateClaimProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}
	if req.CurrentStage == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "current_stage is required"})
	}

	progress, err := s.Store.ClaimProgressByPackage(packageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch claim progress"})
	}

	progress.AdvanceTo(*req.CurrentStage, s.Clock.Now().Format(dateLayout))
	if err := s.Store.SaveClaimProgress(progress); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save claim progress"})
	}
	return c.JSON(progress)
}
