package models

// InvestmentPackage is a bundle of surplus claims offered for investment.
type InvestmentPackage struct {
	ID              int     `gorm:"primaryKey" json:"id"`
	Title           string  `gorm:"size:160;not null" json:"title"`
	Slug            string  `gorm:"size:180;index" json:"slug"`
	Description     string  `json:"description"`
	RiskLevel       string  `gorm:"size:32" json:"risk_level"`
	ExpectedReturn  float64 `json:"expected_return"`
	Duration        string  `gorm:"size:32" json:"duration"`
	MinInvestment   float64 `json:"min_investment"`
	MaxInvestment   float64 `json:"max_investment"`
	FundingProgress float64 `json:"funding_progress"`
	RaisedAmount    float64 `json:"raised_amount"`
	TargetAmount    float64 `json:"target_amount"`
	Status          string  `gorm:"size:16;index" json:"status"`
	State           string  `gorm:"size:32" json:"state"`
	ClaimType       string  `gorm:"size:64" json:"claim_type"`
	CommissionRate  float64 `json:"commission_rate"`
}

func (InvestmentPackage) TableName() string {
	return "investment_packages"
}
