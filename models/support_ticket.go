package models

// TicketReply is one admin reply on a support ticket.
type TicketReply struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// SupportTicket is an investor-raised support request. Replies and
// attachment URLs are stored inline on the ticket rather than in side
// tables; tickets are small and are always read whole.
type SupportTicket struct {
	ID          int           `gorm:"primaryKey" json:"id"`
	Subject     string        `gorm:"size:200;not null" json:"subject"`
	UserName    string        `gorm:"size:120" json:"user_name"`
	UserEmail   string        `gorm:"size:160" json:"user_email"`
	Status      string        `gorm:"size:16" json:"status"`
	Priority    string        `gorm:"size:16" json:"priority"`
	Category    string        `gorm:"size:64" json:"category"`
	CreatedDate string        `gorm:"size:10" json:"created_date"`
	Message     string        `json:"message"`
	Replies     []TicketReply `gorm:"serializer:json" json:"replies"`
	Attachments []string      `gorm:"serializer:json" json:"attachments"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
