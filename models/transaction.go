package models

// Transaction records a single investment into a package. User and package
// names are denormalized copies taken at creation time; they are not kept in
// sync with the referenced rows.
type Transaction struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	UserID      int     `gorm:"index" json:"user_id"`
	UserName    string  `gorm:"size:120" json:"user_name"`
	PackageID   int     `gorm:"index" json:"package_id"`
	PackageName string  `gorm:"size:160" json:"package_name"`
	Amount      float64 `json:"amount"`
	Status      string  `gorm:"size:16" json:"status"`
	Date        string  `gorm:"size:10;index" json:"date"`
	PartnerID   string  `gorm:"size:8" json:"partner_id"`
	PartnerName string  `gorm:"size:120" json:"partner_name"`
	Commission  float64 `json:"commission"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// PlatformCommissionRate is the flat rate applied to every new investment.
// Partners and packages carry their own commission_rate fields, but those
// are informational only; transaction commissions always use this rate.
const PlatformCommissionRate = 0.085
