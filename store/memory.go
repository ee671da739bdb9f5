package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"surplus-claims-platform/models"
)

// MemoryStore keeps every collection in process memory behind one RWMutex.
// Writes are only visible inside this process: deployments using it must run
// a single instance. Use the GORM store for anything multi-process.
//
// Ids come from per-collection monotonic counters seeded from the highest
// existing id, so they stay unique regardless of collection length and are
// safe on empty collections (the first assigned id is 1).
type MemoryStore struct {
	mu sync.RWMutex

	users         []models.User
	packages      []models.InvestmentPackage
	transactions  []models.Transaction
	partners      []models.Partner
	tickets       []models.SupportTicket
	claimProgress []models.ClaimProgress

	packageSeq     int
	transactionSeq int
	ticketSeq      int
	partnerSeq     int
}

func NewMemoryStore(data Dataset) *MemoryStore {
	s := &MemoryStore{
		users:         data.Users,
		packages:      data.Packages,
		transactions:  data.Transactions,
		partners:      data.Partners,
		tickets:       data.Tickets,
		claimProgress: data.ClaimProgress,
	}
	for _, p := range s.packages {
		if p.ID > s.packageSeq {
			s.packageSeq = p.ID
		}
	}
	for _, t := range s.transactions {
		if t.ID > s.transactionSeq {
			s.transactionSeq = t.ID
		}
	}
	for _, t := range s.tickets {
		if t.ID > s.ticketSeq {
			s.ticketSeq = t.ID
		}
	}
	for _, p := range s.partners {
		if n := partnerSeq(p.ID); n > s.partnerSeq {
			s.partnerSeq = n
		}
	}
	return s
}

// partnerSeq extracts the numeric suffix of a "P001"-style id, 0 if the id
// does not match that shape.
func partnerSeq(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "P"))
	if err != nil || !strings.HasPrefix(id, "P") {
		return 0
	}
	return n
}

func (s *MemoryStore) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) UserByID(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) Packages() ([]models.InvestmentPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InvestmentPackage, len(s.packages))
	copy(out, s.packages)
	return out, nil
}

func (s *MemoryStore) PackageByID(id int) (models.InvestmentPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return models.InvestmentPackage{}, ErrNotFound
}

func (s *MemoryStore) InsertPackage(p *models.InvestmentPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packageSeq++
	p.ID = s.packageSeq
	s.packages = append(s.packages, *p)
	return nil
}

func (s *MemoryStore) SavePackage(p models.InvestmentPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.packages {
		if s.packages[i].ID == p.ID {
			s.packages[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Transactions() ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

func (s *MemoryStore) TransactionsByUser(userID int) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemoryStore) InsertTransaction(t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactionSeq++
	t.ID = s.transactionSeq
	s.transactions = append(s.transactions, *t)
	return nil
}

func (s *MemoryStore) Partners() ([]models.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Partner, len(s.partners))
	copy(out, s.partners)
	return out, nil
}

func (s *MemoryStore) InsertPartner(p *models.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partnerSeq++
	p.ID = fmt.Sprintf("P%03d", s.partnerSeq)
	s.partners = append(s.partners, *p)
	return nil
}

func (s *MemoryStore) Tickets() ([]models.SupportTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SupportTicket, len(s.tickets))
	for i, t := range s.tickets {
		out[i] = copyTicket(t)
	}
	return out, nil
}

func (s *MemoryStore) TicketByID(id int) (models.SupportTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return copyTicket(t), nil
		}
	}
	return models.SupportTicket{}, ErrNotFound
}

func (s *MemoryStore) InsertTicket(t *models.SupportTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticketSeq++
	t.ID = s.ticketSeq
	s.tickets = append(s.tickets, copyTicket(*t))
	return nil
}

func (s *MemoryStore) SaveTicket(t models.SupportTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == t.ID {
			s.tickets[i] = copyTicket(t)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ClaimProgress() ([]models.ClaimProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ClaimProgress, len(s.claimProgress))
	for i, p := range s.claimProgress {
		out[i] = copyProgress(p)
	}
	return out, nil
}

func (s *MemoryStore) ClaimProgressByPackage(packageID int) (models.ClaimProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.claimProgress {
		if p.PackageID == packageID {
			return copyProgress(p), nil
		}
	}
	return models.ClaimProgress{}, ErrNotFound
}

func (s *MemoryStore) SaveClaimProgress(p models.ClaimProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.claimProgress {
		if s.claimProgress[i].PackageID == p.PackageID {
			s.claimProgress[i] = copyProgress(p)
			return nil
		}
	}
	return ErrNotFound
}

// Tickets and claim-progress rows carry slices, so a struct copy is not
// enough to isolate callers from the shared state.

func copyTicket(t models.SupportTicket) models.SupportTicket {
	out := t
	out.Replies = make([]models.TicketReply, len(t.Replies))
	copy(out.Replies, t.Replies)
	out.Attachments = make([]string, len(t.Attachments))
	copy(out.Attachments, t.Attachments)
	if len(out.Replies) == 0 {
		out.Replies = nil
	}
	if len(out.Attachments) == 0 {
		out.Attachments = nil
	}
	return out
}

func copyProgress(p models.ClaimProgress) models.ClaimProgress {
	out := p
	out.Stages = make([]models.ClaimStage, len(p.Stages))
	for i, st := range p.Stages {
		out.Stages[i] = st
		if st.Date != nil {
			d := *st.Date
			out.Stages[i].Date = &d
		}
	}
	return out
}
