package models

// Partner is a sales partner who refers investors. Partner ids are short
// display codes ("P001"), generated from a monotonic counter so they stay
// unique even if rows are ever removed.
type Partner struct {
	ID              string  `gorm:"primaryKey;size:8" json:"id"`
	Name            string  `gorm:"size:120;not null" json:"name"`
	Email           string  `gorm:"size:160" json:"email"`
	Phone           string  `gorm:"size:32" json:"phone"`
	CommissionRate  float64 `json:"commission_rate"`
	TotalSales      float64 `json:"total_sales"`
	TotalCommission float64 `json:"total_commission"`
	Status          string  `gorm:"size:16" json:"status"`
	JoinedDate      string  `gorm:"size:10" json:"joined_date"`
}

func (Partner) TableName() string {
	return "partners"
}
