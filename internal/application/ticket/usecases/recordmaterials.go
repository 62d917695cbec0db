package usecases

import (
	"context"
	"time"

	"propflow/internal/domain/inventory"
	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/sanitize"
)

type MaterialInput struct {
	ItemName string
	Quantity int
}

type RecordMaterialsCommand struct {
	Actor            authorization.Actor
	TicketID         uint
	Materials        []MaterialInput
	TimeSpentMinutes *int
}

type RecordMaterialsResult struct {
	TicketID      uint                   `json:"ticket_id"`
	MaterialsUsed []ticket.MaterialUsage `json:"materials_used"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type RecordMaterialsUseCase struct {
	ticketRepo    ticket.Repository
	inventoryRepo inventory.Repository
	scopes        scopeResolver
	gate          ticket.AccessGate
	tx            Transactor
	logger        logger.Interface
}

func NewRecordMaterialsUseCase(
	ticketRepo ticket.Repository,
	inventoryRepo inventory.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	tx Transactor,
	logger logger.Interface,
) *RecordMaterialsUseCase {
	return &RecordMaterialsUseCase{
		ticketRepo:    ticketRepo,
		inventoryRepo: inventoryRepo,
		scopes:        newScopeResolver(staffRepo, tenancyRepo),
		gate:          ticket.NewAccessGate(),
		tx:            tx,
		logger:        logger,
	}
}

// Execute replaces the ticket's consumed-material list and decrements the
// inventory accordingly. Unknown item names are skipped without failing the
// request; stock never goes below zero.
func (uc *RecordMaterialsUseCase) Execute(ctx context.Context, cmd RecordMaterialsCommand) (*RecordMaterialsResult, error) {
	uc.logger.Infow("executing record materials use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	materials, err := normalizeMaterials(cmd.Materials)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t.Status().IsTerminal() {
		return nil, errors.NewValidationError("cannot record materials on a " + t.Status().String() + " ticket")
	}

	scope, err := uc.scopes.resolve(ctx, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !uc.gate.CanRecordMaterials(cmd.Actor, scope, t) {
		return nil, errors.NewForbiddenError("you cannot record materials on this ticket")
	}

	t.SetMaterialsUsed(materials)
	if cmd.TimeSpentMinutes != nil {
		if err := t.SetTimeSpent(*cmd.TimeSpentMinutes); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := consumeInventory(txCtx, uc.inventoryRepo, uc.logger, materials); err != nil {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to record materials", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return &RecordMaterialsResult{
		TicketID:      t.ID(),
		MaterialsUsed: t.MaterialsUsed(),
		UpdatedAt:     t.UpdatedAt(),
	}, nil
}

func normalizeMaterials(inputs []MaterialInput) ([]ticket.MaterialUsage, error) {
	materials := make([]ticket.MaterialUsage, 0, len(inputs))
	for _, m := range inputs {
		name := sanitize.Text(m.ItemName)
		if name == "" {
			return nil, errors.NewValidationError("material item name is required")
		}
		if m.Quantity <= 0 {
			return nil, errors.NewValidationError("material quantity must be positive")
		}
		materials = append(materials, ticket.MaterialUsage{ItemName: name, Quantity: m.Quantity})
	}
	return materials, nil
}

// consumeInventory decrements stock for each recorded material. Items missing
// from the ledger are skipped; available stock is the deduction ceiling.
func consumeInventory(ctx context.Context, repo inventory.Repository, log logger.Interface, materials []ticket.MaterialUsage) error {
	for _, m := range materials {
		item, err := repo.FindByName(ctx, m.ItemName)
		if err != nil {
			if errors.IsNotFoundError(err) {
				log.Warnw("material not in inventory, skipping", "item_name", m.ItemName)
				continue
			}
			return err
		}

		consumed := item.Consume(m.Quantity)
		if consumed < m.Quantity {
			log.Warnw("insufficient stock, deducted available quantity only",
				"item_name", m.ItemName,
				"requested", m.Quantity,
				"deducted", consumed)
		}
		if err := repo.Update(ctx, item); err != nil {
			return err
		}
		if item.IsBelowReorderThreshold() {
			log.Warnw("inventory item at or below reorder threshold",
				"item_name", item.Name(),
				"quantity", item.Quantity(),
				"min_quantity", item.MinQuantity())
		}
	}
	return nil
}
