// Package store holds the record collections behind the admin and investor
// APIs. The Store interface lets handlers run against the in-memory
// implementation (default, single instance) or the Postgres-backed one
// (multi-process deployments); both hand out copies, never shared rows.
package store

import (
	"errors"

	"surplus-claims-platform/models"
)

// ErrNotFound is returned when a lookup or update targets an id that does
// not exist in the relevant collection.
var ErrNotFound = errors.New("record not found")

type Store interface {
	Users() ([]models.User, error)
	UserByID(id int) (models.User, error)

	Packages() ([]models.InvestmentPackage, error)
	PackageByID(id int) (models.InvestmentPackage, error)
	// InsertPackage assigns the next package id and appends the row.
	InsertPackage(p *models.InvestmentPackage) error
	SavePackage(p models.InvestmentPackage) error

	Transactions() ([]models.Transaction, error)
	TransactionsByUser(userID int) ([]models.Transaction, error)
	// InsertTransaction assigns the next transaction id and appends the row.
	InsertTransaction(t *models.Transaction) error

	Partners() ([]models.Partner, error)
	// InsertPartner assigns the next "P%03d" id and appends the row.
	InsertPartner(p *models.Partner) error

	Tickets() ([]models.SupportTicket, error)
	TicketByID(id int) (models.SupportTicket, error)
	// InsertTicket assigns the next ticket id and appends the row.
	InsertTicket(t *models.SupportTicket) error
	SaveTicket(t models.SupportTicket) error

	ClaimProgress() ([]models.ClaimProgress, error)
	ClaimProgressByPackage(packageID int) (models.ClaimProgress, error)
	SaveClaimProgress(p models.ClaimProgress) error
}

// Dataset is the initial contents of a store.
type Dataset struct {
	Users         []models.User
	Packages      []models.InvestmentPackage
	Transactions  []models.Transaction
	Partners      []models.Partner
	Tickets       []models.SupportTicket
	ClaimProgress []models.ClaimProgress
}
