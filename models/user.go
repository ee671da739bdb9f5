package models

// User is an investor account. Accounts are provisioned outside this
// service, so there is no creation route; rows only enter the store through
// seeding or an external migration.
type User struct {
	ID            int     `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:120;not null" json:"name"`
	Email         string  `gorm:"size:160" json:"email"`
	Phone         string  `gorm:"size:32" json:"phone"`
	Status        string  `gorm:"size:16" json:"status"`
	CreatedDate   string  `gorm:"size:10" json:"created_date"`
	TotalInvested float64 `json:"total_invested"`
	CurrentValue  float64 `json:"current_value"`
	WalletBalance float64 `json:"wallet_balance"`
}

func (User) TableName() string {
	return "users"
}
