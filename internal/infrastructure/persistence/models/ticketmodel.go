package models

type TicketModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Category           string `gorm:"size:50;not null;index"`
	Title              string `gorm:"size:200;not null"`
	Description        string `gorm:"type:text;not null"`
	Priority           string `gorm:"size:20;not null;index"`
	PriorityRank       int    `gorm:"not null;index"`
	Status             string `gorm:"size:20;not null;index"`
	AccessInstructions string `gorm:"type:text"`
	Images             string `gorm:"type:json"`
	MaterialsUsed      string `gorm:"type:json"`
	TimeSpentMinutes   *int
	ScheduledDate      *int64 `gorm:"index"`
	CompletedDate      *int64
	TenantID           uint  `gorm:"not null;index"`
	UnitID             uint  `gorm:"not null;index"`
	PropertyID         uint  `gorm:"not null;index"`
	AssignedStaffID    *uint `gorm:"index"`
	Version            int   `gorm:"not null;default:1"`
	CreatedAt          int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt          int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketNoteModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	AuthorRole string `gorm:"size:20;not null"`
	Text       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketNoteModel) TableName() string {
	return "ticket_notes"
}
