package services_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"surplus-claims-platform/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActivePackagesFiltersByStatus(t *testing.T) {
	app, st := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, raw := get(t, app, "/api/investor/packages")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.InvestmentPackage](t, raw), 2)

	pkg, err := st.PackageByID(2)
	require.NoError(t, err)
	pkg.Status = "Closed"
	require.NoError(t, st.SavePackage(pkg))

	status, raw = get(t, app, "/api/investor/packages")
	require.Equal(t, http.StatusOK, status)
	packages := decode[[]models.InvestmentPackage](t, raw)
	require.Len(t, packages, 1)
	for _, p := range packages {
		assert.Equal(t, "Active", p.Status)
	}
}

func TestGetPackageByID(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, raw := get(t, app, "/api/investor/packages/2")
	require.Equal(t, http.StatusOK, status)
	pkg := decode[models.InvestmentPackage](t, raw)
	assert.Equal(t, "Jacksonville Property Claims", pkg.Title)

	status, raw = get(t, app, "/api/investor/packages/99")
	require.Equal(t, http.StatusNotFound, status)
	body := decode[map[string]string](t, raw)
	assert.Equal(t, "Package not found", body["error"])
}

func TestGetInvestorDashboard(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, raw := get(t, app, "/api/investor/dashboard/1")
	require.Equal(t, http.StatusOK, status)
	dash := decode[models.InvestorDashboard](t, raw)

	assert.Equal(t, "John Smith", dash.User.Name)
	require.Len(t, dash.Investments, 1)
	assert.Equal(t, 1, dash.Investments[0].UserID)
	assert.Equal(t, 5309.0, dash.Returns.YTD.Total)
	assert.Equal(t, 13250.0, dash.Returns.AllTime.Total)
	assert.Len(t, dash.AvailablePackages, 2)
}

func TestGetInvestorDashboardUserNotFound(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, raw := get(t, app, "/api/investor/dashboard/99")
	require.Equal(t, http.StatusNotFound, status)
	body := decode[map[string]string](t, raw)
	assert.Equal(t, "User not found", body["error"])
}

func TestCreateInvestment(t *testing.T) {
	app, st := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, raw := doJSON(t, app, http.MethodPost, "/api/investor/invest", map[string]any{
		"user_id":      1,
		"user_name":    "John Smith",
		"package_id":   1,
		"package_name": "Orlando Surplus Claims Bundle",
		"amount":       10000,
	})
	require.Equal(t, http.StatusCreated, status)
	tx := decode[models.Transaction](t, raw)

	assert.Equal(t, 3, tx.ID)
	assert.Equal(t, "Pending", tx.Status)
	assert.Equal(t, "2024-07-22", tx.Date)
	assert.InDelta(t, 850.0, tx.Commission, 1e-9)
	assert.Equal(t, "P001", tx.PartnerID, "partner defaults when absent")
	assert.Equal(t, "Direct", tx.PartnerName)

	stored, err := st.Transactions()
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestCreateInvestmentKeepsExplicitPartner(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, raw := doJSON(t, app, http.MethodPost, "/api/investor/invest", map[string]any{
		"user_id":      2,
		"package_id":   2,
		"amount":       50000,
		"partner_id":   "P002",
		"partner_name": "Capital Growth Partners",
	})
	require.Equal(t, http.StatusCreated, status)
	tx := decode[models.Transaction](t, raw)
	assert.Equal(t, "P002", tx.PartnerID)
	assert.Equal(t, "Capital Growth Partners", tx.PartnerName)
}

func TestCreateInvestmentValidation(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, _ := doJSON(t, app, http.MethodPost, "/api/investor/invest", map[string]any{
		"user_id": 1, "package_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, status, "missing amount")

	status, _ = doJSON(t, app, http.MethodPost, "/api/investor/invest", map[string]any{
		"amount": 10000,
	})
	assert.Equal(t, http.StatusBadRequest, status, "missing ids")
}

func TestCreateSupportTicket(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, raw := doJSON(t, app, http.MethodPost, "/api/investor/support-tickets", map[string]any{
		"subject":    "Disbursement timing",
		"user_name":  "John Smith",
		"user_email": "john.smith@email.com",
		"message":    "When does stage three begin?",
	})
	require.Equal(t, http.StatusCreated, status)
	ticket := decode[models.SupportTicket](t, raw)

	assert.Equal(t, 3, ticket.ID)
	assert.Equal(t, "Open", ticket.Status)
	assert.Equal(t, "Medium", ticket.Priority, "defaults when absent")
	assert.Equal(t, "General", ticket.Category)
	assert.Equal(t, "2024-07-22", ticket.CreatedDate)
}

func TestCreateSupportTicketValidation(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	status, _ := doJSON(t, app, http.MethodPost, "/api/investor/support-tickets", map[string]any{
		"subject": "no message",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUploadTicketAttachment(t *testing.T) {
	app, st := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", "statement.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 test document"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/investor/support-tickets/1/attachments", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	ticket, err := st.TicketByID(1)
	require.NoError(t, err)
	require.Len(t, ticket.Attachments, 1)
	assert.True(t, strings.HasPrefix(ticket.Attachments[0], "/uploads/tickets/"), ticket.Attachments[0])
}

func TestUploadTicketAttachmentNotFound(t *testing.T) {
	app, _ := newTestApp(t, clockwork.NewFakeClockAt(seedNow))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	_, err := w.CreateFormFile("file", "statement.pdf")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/investor/support-tickets/99/attachments", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
