package cli

import (
	"fmt"

	"github.com/julianstephens/timesheet/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	snap := ctx.Store.Snapshot()

	fmt.Fprintf(ctx.out(), "Validating %d entries...\n\n", len(snap.Entries))
	result := validation.New().ValidateEntries(snap.Entries)
	fmt.Fprintln(ctx.out(), result.FormatReport())

	// conflicts are reported, not treated as a failure
	return nil
}
