package migration

import (
	"propflow/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.PropertyModel{},
		&models.UnitModel{},
		&models.TenantModel{},
		&models.StaffModel{},
		&models.TicketModel{},
		&models.TicketNoteModel{},
		&models.InventoryItemModel{},
	}
}
