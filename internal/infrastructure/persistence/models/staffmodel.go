package models

type StaffModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	PropertyIDs  string `gorm:"type:json"`
	Specialties  string `gorm:"type:json"`
	Availability string `gorm:"type:json"`
	WorkStart    string `gorm:"size:5"`
	WorkEnd      string `gorm:"size:5"`
	Active       bool   `gorm:"not null;default:true;index"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StaffModel) TableName() string {
	return "maintenance_staff"
}
