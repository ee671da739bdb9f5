package store

import (
	"errors"
	"fmt"

	"surplus-claims-platform/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormStore backs the collections with Postgres so multiple server processes
// share one state. Selected by setting DATABASE_URL; without it the server
// falls back to the in-memory store.
type GormStore struct {
	DB *gorm.DB
}

func OpenGorm(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.InvestmentPackage{},
		&models.Transaction{},
		&models.Partner{},
		&models.SupportTicket{},
		&models.ClaimProgress{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := &GormStore{DB: db}
	if err := s.seedIfEmpty(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedIfEmpty loads the example dataset into a fresh database. An empty
// users table is the marker: users have no creation route, so a deployment
// that has been seeded always has rows there.
func (s *GormStore) seedIfEmpty() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect users table: %w", err)
	}
	if count > 0 {
		return nil
	}
	data := DefaultDataset()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&data.Users).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Packages).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Transactions).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Partners).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Tickets).Error; err != nil {
			return err
		}
		return tx.Create(&data.ClaimProgress).Error
	})
}

func (s *GormStore) Users() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("id ASC").Find(&users).Error
	return users, err
}

func (s *GormStore) UserByID(id int) (models.User, error) {
	var u models.User
	if err := s.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *GormStore) Packages() ([]models.InvestmentPackage, error) {
	var packages []models.InvestmentPackage
	err := s.DB.Order("id ASC").Find(&packages).Error
	return packages, err
}

func (s *GormStore) PackageByID(id int) (models.InvestmentPackage, error) {
	var p models.InvestmentPackage
	if err := s.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.InvestmentPackage{}, ErrNotFound
		}
		return models.InvestmentPackage{}, err
	}
	return p, nil
}

func (s *GormStore) InsertPackage(p *models.InvestmentPackage) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		p.ID = nextIntID(tx, &models.InvestmentPackage{})
		return tx.Create(p).Error
	})
}

func (s *GormStore) SavePackage(p models.InvestmentPackage) error {
	// Select("*") so zero-valued fields overwrite too; Updates skips them
	// by default.
	res := s.DB.Model(&models.InvestmentPackage{}).Where("id = ?", p.ID).Select("*").Updates(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Transactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.DB.Order("id ASC").Find(&transactions).Error
	return transactions, err
}

func (s *GormStore) TransactionsByUser(userID int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.DB.Where("user_id = ?", userID).Order("id ASC").Find(&transactions).Error
	return transactions, err
}

func (s *GormStore) InsertTransaction(t *models.Transaction) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		t.ID = nextIntID(tx, &models.Transaction{})
		return tx.Create(t).Error
	})
}

func (s *GormStore) Partners() ([]models.Partner, error) {
	var partners []models.Partner
	err := s.DB.Order("joined_date ASC, id ASC").Find(&partners).Error
	return partners, err
}

func (s *GormStore) InsertPartner(p *models.Partner) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.Partner{}).Pluck("id", &ids).Error; err != nil {
			return err
		}
		max := 0
		for _, id := range ids {
			if n := partnerSeq(id); n > max {
				max = n
			}
		}
		p.ID = fmt.Sprintf("P%03d", max+1)
		return tx.Create(p).Error
	})
}

func (s *GormStore) Tickets() ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := s.DB.Order("id ASC").Find(&tickets).Error
	return tickets, err
}

func (s *GormStore) TicketByID(id int) (models.SupportTicket, error) {
	var t models.SupportTicket
	if err := s.DB.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SupportTicket{}, ErrNotFound
		}
		return models.SupportTicket{}, err
	}
	return t, nil
}

func (s *GormStore) InsertTicket(t *models.SupportTicket) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		t.ID = nextIntID(tx, &models.SupportTicket{})
		return tx.Create(t).Error
	})
}

func (s *GormStore) SaveTicket(t models.SupportTicket) error {
	res := s.DB.Model(&models.SupportTicket{}).Where("id = ?", t.ID).Select("*").Updates(&t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ClaimProgress() ([]models.ClaimProgress, error) {
	var progress []models.ClaimProgress
	err := s.DB.Order("package_id ASC").Find(&progress).Error
	return progress, err
}

func (s *GormStore) ClaimProgressByPackage(packageID int) (models.ClaimProgress, error) {
	var p models.ClaimProgress
	if err := s.DB.First(&p, "package_id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ClaimProgress{}, ErrNotFound
		}
		return models.ClaimProgress{}, err
	}
	return p, nil
}

func (s *GormStore) SaveClaimProgress(p models.ClaimProgress) error {
	res := s.DB.Model(&models.ClaimProgress{}).Where("package_id = ?", p.PackageID).
		Select("current_stage", "stages").Updates(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// nextIntID reads max(id)+1 inside the caller's transaction. Counters never
// reuse an id after a row is removed because the max only grows while rows
// are append-only.
func nextIntID(tx *gorm.DB, model interface{}) int {
	var max int64
	tx.Model(model).Select("COALESCE(MAX(id), 0)").Scan(&max)
	return int(max) + 1
}
