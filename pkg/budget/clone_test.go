package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetmaster/budgetmaster/internal/utils"
)

func TestClone_FreshIdentityAndCopySuffix(t *testing.T) {
	src := NewInitialMonth(&utils.MockClock{})
	src.Name = "March 2026"

	dup := Clone(src)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "March 2026 Copy", dup.Name)
	assert.Len(t, dup.Transactions, len(src.Transactions))
}

func TestClone_TransactionsGetFreshIdsAndUnpaid(t *testing.T) {
	src := NewInitialMonth(&utils.MockClock{})
	src.Transactions[0].IsPaid = true

	dup := Clone(src)

	for i := range dup.Transactions {
		assert.NotEqual(t, src.Transactions[i].ID, dup.Transactions[i].ID)
		assert.False(t, dup.Transactions[i].IsPaid)
		assert.Equal(t, src.Transactions[i].Name, dup.Transactions[i].Name)
		assert.Equal(t, src.Transactions[i].Amount, dup.Transactions[i].Amount)
	}
}

func TestClone_MutatingDuplicateDoesNotTouchSource(t *testing.T) {
	src := NewInitialMonth(&utils.MockClock{})
	dup := Clone(src)

	dup.Transactions[0].Amount = 9999
	dup.Vehicles[0].Reg = "XX00XXX"
	dup.Sliders[SectionPersonalAllowance][0].Value = 1
	dup.TextSections[SectionNotes] = "changed"
	dup.Layout.Col1[0] = "section_other"
	style := dup.SectionStyles[SectionIncoming]
	style.Title = "changed"
	dup.SectionStyles[SectionIncoming] = style

	assert.NotEqual(t, 9999.0, src.Transactions[0].Amount)
	assert.Equal(t, "AV59FRO", src.Vehicles[0].Reg)
	assert.Equal(t, 600.0, src.Sliders[SectionPersonalAllowance][0].Value)
	assert.Equal(t, "", src.TextSections[SectionNotes])
	assert.Equal(t, SectionIncoming, src.Layout.Col1[0])
	assert.Equal(t, "Incoming", src.SectionStyles[SectionIncoming].Title)
}

func TestClone_PreservesFolder(t *testing.T) {
	folderID := "folder-1"
	src := NewInitialMonth(&utils.MockClock{})
	src.FolderID = &folderID

	dup := Clone(src)

	require.NotNil(t, dup.FolderID)
	assert.Equal(t, folderID, *dup.FolderID)
	// the pointer itself must not be shared
	*dup.FolderID = "folder-2"
	assert.Equal(t, "folder-1", *src.FolderID)
}
