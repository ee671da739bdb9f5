package store

import "surplus-claims-platform/models"

func strPtr(s string) *string { return &s }

// DefaultDataset returns the fixed example rows the platform ships with.
// Each call builds a fresh copy so independent stores never share slices.
func DefaultDataset() Dataset {
	return Dataset{
		Users: []models.User{
			{
				ID:            1,
				Name:          "John Smith",
				Email:         "john.smith@email.com",
				Phone:         "555-123-4567",
				Status:        "Active",
				CreatedDate:   "2024-01-15",
				TotalInvested: 125000,
				CurrentValue:  138750,
				WalletBalance: 5250,
			},
			{
				ID:            2,
				Name:          "Sarah Johnson",
				Email:         "sarah.j@email.com",
				Phone:         "555-987-6543",
				Status:        "Active",
				CreatedDate:   "2024-02-20",
				TotalInvested: 75000,
				CurrentValue:  82500,
				WalletBalance: 2100,
			},
		},
		Packages: []models.InvestmentPackage{
			{
				ID:              1,
				Title:           "Orlando Surplus Claims Bundle",
				Slug:            "orlando-surplus-claims-bundle",
				Description:     "High-yield surplus claims from Orlando foreclosure auctions",
				RiskLevel:       "Medium",
				ExpectedReturn:  12.5,
				Duration:        "18-24 months",
				MinInvestment:   50000,
				MaxInvestment:   250000,
				FundingProgress: 65,
				RaisedAmount:    650000,
				TargetAmount:    1000000,
				Status:          "Active",
				State:           "Florida",
				ClaimType:       "Foreclosure Surplus",
				CommissionRate:  8.5,
			},
			{
				ID:              2,
				Title:           "Jacksonville Property Claims",
				Slug:            "jacksonville-property-claims",
				Description:     "Premium surplus claims from Jacksonville metro area",
				RiskLevel:       "Medium-High",
				ExpectedReturn:  14.2,
				Duration:        "12-18 months",
				MinInvestment:   100000,
				MaxInvestment:   500000,
				FundingProgress: 42,
				RaisedAmount:    840000,
				TargetAmount:    2000000,
				Status:          "Active",
				State:           "Florida",
				ClaimType:       "Property Tax Surplus",
				CommissionRate:  9.0,
			},
		},
		Transactions: []models.Transaction{
			{
				ID:          1,
				UserID:      1,
				UserName:    "John Smith",
				PackageID:   1,
				PackageName: "Orlando Surplus Claims Bundle",
				Amount:      75000,
				Status:      "Approved",
				Date:        "2024-07-20",
				PartnerID:   "P001",
				PartnerName: "Investment Partners LLC",
				Commission:  6375,
			},
			{
				ID:          2,
				UserID:      2,
				UserName:    "Sarah Johnson",
				PackageID:   2,
				PackageName: "Jacksonville Property Claims",
				Amount:      50000,
				Status:      "Pending",
				Date:        "2024-07-22",
				PartnerID:   "P002",
				PartnerName: "Capital Growth Partners",
				Commission:  4500,
			},
		},
		Partners: []models.Partner{
			{
				ID:              "P001",
				Name:            "Investment Partners LLC",
				Email:           "contact@investmentpartners.com",
				Phone:           "555-111-2222",
				CommissionRate:  8.5,
				TotalSales:      245000,
				TotalCommission: 20825,
				Status:          "Active",
				JoinedDate:      "2024-01-10",
			},
			{
				ID:              "P002",
				Name:            "Capital Growth Partners",
				Email:           "info@capitalgrowth.com",
				Phone:           "555-333-4444",
				CommissionRate:  9.0,
				TotalSales:      180000,
				TotalCommission: 16200,
				Status:          "Active",
				JoinedDate:      "2024-02-15",
			},
		},
		Tickets: []models.SupportTicket{
			{
				ID:          1,
				Subject:     "Investment Status Inquiry",
				UserName:    "John Smith",
				UserEmail:   "john.smith@email.com",
				Status:      "Open",
				Priority:    "Medium",
				Category:    "Investment Inquiry",
				CreatedDate: "2024-07-23",
				Message:     "I would like to check the status of my Orlando investment and when I can expect the next update.",
			},
			{
				ID:          2,
				Subject:     "Account Access Issue",
				UserName:    "Sarah Johnson",
				UserEmail:   "sarah.j@email.com",
				Status:      "In Progress",
				Priority:    "High",
				Category:    "Technical Support",
				CreatedDate: "2024-07-22",
				Message:     "I am unable to log into my account. The password reset is not working.",
			},
		},
		ClaimProgress: []models.ClaimProgress{
			{
				PackageID:    1,
				PackageName:  "Orlando Surplus Claims Bundle",
				CurrentStage: 2,
				Stages: []models.ClaimStage{
					{Name: "Transferred Ownership", Completed: true, Date: strPtr("2024-06-15")},
					{Name: "Awaiting Disbursement", Completed: true, Date: strPtr("2024-07-01")},
					{Name: "Attorney Received Check", Completed: false},
					{Name: "Attorney Disbursed Funds", Completed: false},
					{Name: "Returns Paid Out", Completed: false},
				},
			},
			{
				PackageID:    2,
				PackageName:  "Jacksonville Property Claims",
				CurrentStage: 1,
				Stages: []models.ClaimStage{
					{Name: "Transferred Ownership", Completed: true, Date: strPtr("2024-07-10")},
					{Name: "Awaiting Disbursement", Completed: false},
					{Name: "Attorney Received Check", Completed: false},
					{Name: "Attorney Disbursed Funds", Completed: false},
					{Name: "Returns Paid Out", Completed: false},
				},
			},
		},
	}
}
