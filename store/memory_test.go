package store

import (
	"testing"

	"surplus-claims-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertPackageAssignsMonotonicIDs(t *testing.T) {
	s := NewMemoryStore(DefaultDataset())

	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		before, err := s.Packages()
		require.NoError(t, err)
		max := 0
		for _, p := range before {
			if p.ID > max {
				max = p.ID
			}
		}

		pkg := models.InvestmentPackage{Title: "Tampa Surplus Claims", Status: "Active"}
		require.NoError(t, s.InsertPackage(&pkg))

		assert.Equal(t, max+1, pkg.ID)
		assert.False(t, seen[pkg.ID], "id %d assigned twice", pkg.ID)
		seen[pkg.ID] = true
	}
}

func TestInsertPackageEmptyStore(t *testing.T) {
	s := NewMemoryStore(Dataset{})

	pkg := models.InvestmentPackage{Title: "First Package"}
	require.NoError(t, s.InsertPackage(&pkg))
	assert.Equal(t, 1, pkg.ID)
}

func TestInsertTicketEmptyStore(t *testing.T) {
	s := NewMemoryStore(Dataset{})

	ticket := models.SupportTicket{Subject: "First"}
	require.NoError(t, s.InsertTicket(&ticket))
	assert.Equal(t, 1, ticket.ID)
}

func TestInsertPartnerIDs(t *testing.T) {
	s := NewMemoryStore(DefaultDataset())

	p := models.Partner{Name: "Sunbelt Claims Group"}
	require.NoError(t, s.InsertPartner(&p))
	assert.Equal(t, "P003", p.ID)

	q := models.Partner{Name: "Gulf Coast Capital"}
	require.NoError(t, s.InsertPartner(&q))
	assert.Equal(t, "P004", q.ID)
}

func TestInsertPartnerCounterSurvivesGaps(t *testing.T) {
	s := NewMemoryStore(Dataset{
		Partners: []models.Partner{{ID: "P009", Name: "Niner"}},
	})

	p := models.Partner{Name: "Tenner"}
	require.NoError(t, s.InsertPartner(&p))
	assert.Equal(t, "P010", p.ID)
}

func TestLookupsReturnErrNotFound(t *testing.T) {
	s := NewMemoryStore(DefaultDataset())

	_, err := s.UserByID(99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.PackageByID(99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.TicketByID(99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ClaimProgressByPackage(99)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.SavePackage(models.InvestmentPackage{ID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewMemoryStore(DefaultDataset())

	pkg, err := s.PackageByID(1)
	require.NoError(t, err)
	pkg.Title = "mutated"

	again, err := s.PackageByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Orlando Surplus Claims Bundle", again.Title)

	progress, err := s.ClaimProgressByPackage(1)
	require.NoError(t, err)
	*progress.Stages[0].Date = "1999-01-01"
	progress.Stages[2].Completed = true

	again2, err := s.ClaimProgressByPackage(1)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", *again2.Stages[0].Date)
	assert.False(t, again2.Stages[2].Completed)
}

func TestTransactionsByUser(t *testing.T) {
	s := NewMemoryStore(DefaultDataset())

	txs, err := s.TransactionsByUser(1)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, 1, txs[0].ID)

	txs, err = s.TransactionsByUser(42)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
