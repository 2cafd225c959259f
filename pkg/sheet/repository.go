package sheet

import (
	"context"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

// Repository is the persistence port for the two document collections.
// Each collection is loaded and replaced wholesale: persistence is
// last-write-wins over a single serialized blob per collection, never a
// diff or merge. The found flag distinguishes "nothing ever stored"
// (first run, seeding applies) from an intentionally empty collection.
type Repository interface {
	LoadMonths(ctx context.Context) (months []budget.BudgetMonth, found bool, err error)
	SaveMonths(ctx context.Context, months []budget.BudgetMonth) error
	LoadFolders(ctx context.Context) (folders []budget.Folder, found bool, err error)
	SaveFolders(ctx context.Context, folders []budget.Folder) error
}
