package commands

import (
	"errors"
	"time"

	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrPurgeRemovedRecordsCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrPurgeRemovedRecordsCommandIsNotConstructed = errors.New(
	"PurgeRemovedRecordsCommand must be created via NewPurgeRemovedRecordsCommand constructor",
)

// PurgeRemovedRecordsCommand represents a request to physically remove rows
// that were soft-deleted before the cutoff. Dependent rows (edges, line
// items, owned products and orders) follow via the schema's cascades.
type PurgeRemovedRecordsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewPurgeRemovedRecordsCommand creates a command to purge records
// soft-deleted before olderThan.
func NewPurgeRemovedRecordsCommand(olderThan time.Time) (PurgeRemovedRecordsCommand, error) {
	if olderThan.IsZero() {
		return PurgeRemovedRecordsCommand{}, errs.NewValueIsRequiredError("older_than")
	}

	return PurgeRemovedRecordsCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeRemovedRecordsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeRemovedRecordsCommandIsNotConstructed)
}

// OlderThan returns the purge cutoff.
func (c PurgeRemovedRecordsCommand) OlderThan() time.Time {
	return c.olderThan
}
