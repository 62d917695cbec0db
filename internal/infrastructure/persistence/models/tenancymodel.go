package models

type TenantModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	UnitID    uint   `gorm:"not null;index"`
	Status    string `gorm:"size:20;not null;index"`
	StartDate int64  `gorm:"not null"`
	EndDate   *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

type UnitModel struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"not null;index"`
	UnitNumber string `gorm:"size:50;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UnitModel) TableName() string {
	return "units"
}

type PropertyModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Address   string `gorm:"size:500"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PropertyModel) TableName() string {
	return "properties"
}
