package models

type InventoryItemModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;size:200;not null"`
	Category    string  `gorm:"size:50;index"`
	Quantity    int     `gorm:"not null;default:0"`
	Unit        string  `gorm:"size:20"`
	MinQuantity int     `gorm:"not null;default:0"`
	Cost        float64 `gorm:"not null;default:0"`
	Supplier    string  `gorm:"size:200"`
	Location    string  `gorm:"size:200"`
	Version     int     `gorm:"not null;default:1"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (InventoryItemModel) TableName() string {
	return "inventory_items"
}
