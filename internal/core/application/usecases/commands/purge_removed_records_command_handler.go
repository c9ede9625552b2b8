package commands

import (
	"context"
)

// PurgeRemovedRecordsCommandHandler sweeps all three tables for rows
// soft-deleted before the cutoff and removes them physically. The sweep runs
// in one transaction; orders go first so their edge rows are gone before
// organizations cascade into surviving orders.
type PurgeRemovedRecordsCommandHandler struct {
	uowFactory UoWFactory
}

// NewPurgeRemovedRecordsCommandHandler creates a handler for the retention
// purge.
func NewPurgeRemovedRecordsCommandHandler(uowFactory UoWFactory) PurgeRemovedRecordsCommandHandler {
	return PurgeRemovedRecordsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle purges expired soft-deleted rows and returns the total number of
// rows removed across orders, products and organizations.
func (h *PurgeRemovedRecordsCommandHandler) Handle(ctx context.Context, cmd PurgeRemovedRecordsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var total int64

	purged, err := uow.OrderRepository().PurgeDeletedBefore(ctx, cmd.OlderThan())
	if err != nil {
		return 0, err
	}
	total += purged

	purged, err = uow.ProductRepository().PurgeDeletedBefore(ctx, cmd.OlderThan())
	if err != nil {
		return 0, err
	}
	total += purged

	purged, err = uow.OrganizationRepository().PurgeDeletedBefore(ctx, cmd.OlderThan())
	if err != nil {
		return 0, err
	}
	total += purged

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return total, nil
}
