package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_MinimalInput(t *testing.T) {
	// given
	raw := BudgetMonth{ID: "old-sheet", Name: "Old Sheet"}

	// when
	migrated := Migrate(raw)

	// then
	assert.False(t, migrated.Layout.IsZero())
	assert.NotNil(t, migrated.SectionStyles)
	assert.NotNil(t, migrated.Sliders)
	assert.NotNil(t, migrated.TextSections)
	assert.Nil(t, migrated.FolderID)

	// every laid out section must have a style
	for _, id := range migrated.Layout.SectionIDs() {
		_, ok := migrated.SectionStyles[id]
		assert.True(t, ok, "section %s has no style", id)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	inputs := map[string]BudgetMonth{
		"empty":          {},
		"minimal":        {ID: "a", Name: "A"},
		"legacySpending": {ID: "b", Spending: &SpendingAllocations{Chris: 500, Dani: 700}},
		"legacyNotes":    {ID: "c", Notes: "hello"},
		"partialStyles": {ID: "d", SectionStyles: map[string]SectionStyle{
			SectionIncoming: {Title: "Incoming", ColorClass: "bg-emerald-600"},
			"section_xyz":   {Title: "Custom", ColorClass: "bg-blue-500"},
		}},
	}
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			once := Migrate(raw)
			twice := Migrate(once)
			assert.Equal(t, once, twice)
		})
	}
}

func TestMigrate_LegacySpendingBecomesSliders(t *testing.T) {
	// given
	raw := BudgetMonth{ID: "old", Spending: &SpendingAllocations{Chris: 500, Dani: 700}}

	// when
	migrated := Migrate(raw)

	// then
	sliders := migrated.Sliders[SectionPersonalAllowance]
	require.Len(t, sliders, 2)
	assert.Equal(t, "Chris", sliders[0].Name)
	assert.Equal(t, 500.0, sliders[0].Value)
	assert.Equal(t, "lime", sliders[0].Color)
	assert.Equal(t, "Dani", sliders[1].Name)
	assert.Equal(t, 700.0, sliders[1].Value)
	assert.Equal(t, "cyan", sliders[1].Color)
}

func TestMigrate_NoLegacySpendingSeedsDefaultSliders(t *testing.T) {
	migrated := Migrate(BudgetMonth{ID: "old"})

	sliders := migrated.Sliders[SectionPersonalAllowance]
	require.Len(t, sliders, 2)
	assert.Equal(t, 600.0, sliders[0].Value)
	assert.Equal(t, 600.0, sliders[1].Value)
}

func TestMigrate_BackfillsSliderColors(t *testing.T) {
	// given
	raw := BudgetMonth{
		ID: "old",
		Sliders: map[string][]SliderItem{
			SectionPersonalAllowance: {
				{ID: "s1", Name: "One", Value: 100, Max: 2000},
				{ID: "s2", Name: "Two", Value: 200, Max: 2000},
				{ID: "s3", Name: "Three", Value: 300, Max: 2000, Color: "blue"},
			},
		},
	}

	// when
	migrated := Migrate(raw)

	// then
	group := migrated.Sliders[SectionPersonalAllowance]
	assert.Equal(t, "lime", group[0].Color)
	assert.Equal(t, "cyan", group[1].Color)
	assert.Equal(t, "blue", group[2].Color, "existing color must be kept")
}

func TestMigrate_LegacyNotesBecomeTextSections(t *testing.T) {
	migrated := Migrate(BudgetMonth{ID: "old", Notes: "hello"})
	assert.Equal(t, "hello", migrated.TextSections[SectionNotes])

	migrated = Migrate(BudgetMonth{ID: "old"})
	assert.Equal(t, "", migrated.TextSections[SectionNotes])
}

func TestMigrate_DefaultsStyleTypeAndVariant(t *testing.T) {
	// given
	raw := BudgetMonth{
		ID: "old",
		SectionStyles: map[string]SectionStyle{
			SectionIncoming:          {Title: "Incoming", ColorClass: "bg-emerald-600"},
			SectionPersonalAllowance: {Title: "Allowance", ColorClass: "bg-white"},
			SectionNotes:             {Title: "Notes", ColorClass: "bg-white"},
			SectionPetrol:            {Title: "Petrol", ColorClass: "bg-slate-800"},
			SectionVehicles:          {Title: "Vehicles", ColorClass: "bg-white"},
			"section_custom":         {Title: "Custom", ColorClass: "bg-blue-500"},
		},
	}

	// when
	migrated := Migrate(raw)

	// then
	assert.Equal(t, StyleIncome, migrated.SectionStyles[SectionIncoming].Type)
	assert.Equal(t, StyleExpense, migrated.SectionStyles["section_custom"].Type)
	assert.Equal(t, VariantSlider, migrated.SectionStyles[SectionPersonalAllowance].Variant)
	assert.Equal(t, VariantNote, migrated.SectionStyles[SectionNotes].Variant)
	assert.Equal(t, VariantPetrol, migrated.SectionStyles[SectionPetrol].Variant)
	assert.Equal(t, VariantVehicles, migrated.SectionStyles[SectionVehicles].Variant)
	assert.Equal(t, VariantList, migrated.SectionStyles["section_custom"].Variant)
}

func TestMigrate_DefaultsVehicleServiceDateToMOT(t *testing.T) {
	raw := BudgetMonth{
		ID: "old",
		Vehicles: []VehicleDate{
			{ID: "v1", Reg: "AB12CDE", MOTDate: "2025-09-29"},
			{ID: "v2", Reg: "FG34HIJ", MOTDate: "2025-09-26", ServiceDate: "2025-03-01"},
		},
	}

	migrated := Migrate(raw)

	assert.Equal(t, "2025-09-29", migrated.Vehicles[0].ServiceDate)
	assert.Equal(t, "2025-03-01", migrated.Vehicles[1].ServiceDate)
}
