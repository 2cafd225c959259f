package budget

import (
	"github.com/google/uuid"

	"github.com/budgetmaster/budgetmaster/internal/utils"
)

// DefaultLayout is the canonical three-column arrangement of the
// default sections.
func DefaultLayout() BudgetLayout {
	return BudgetLayout{
		Col1: []string{SectionIncoming, SectionPersonalAllowance, SectionNotes},
		Col2: []string{SectionBills, SectionPots},
		Col3: []string{SectionPetrol, SectionVehicles, SectionCancellable, SectionStandingOrders, SectionOneOffs},
	}
}

// DefaultStyles returns the fixed style map for the default sections.
func DefaultStyles() map[string]SectionStyle {
	return map[string]SectionStyle{
		SectionIncoming:       {Title: "Incoming", ColorClass: "bg-emerald-600", Type: StyleIncome, Variant: VariantList},
		SectionBills:          {Title: "Main Bills (DD)", ColorClass: "bg-red-700", Type: StyleExpense, Variant: VariantList},
		SectionPots:           {Title: "Account Pots", ColorClass: "bg-red-800", Type: StyleExpense, Variant: VariantList},
		SectionCancellable:    {Title: "Cancellable DDs", ColorClass: "bg-purple-800", Type: StyleExpense, Variant: VariantList},
		SectionStandingOrders: {Title: "Standing Orders", ColorClass: "bg-red-900", Type: StyleExpense, Variant: VariantList},
		SectionOneOffs:        {Title: "One Off Payments", ColorClass: "bg-orange-700", Type: StyleExpense, Variant: VariantList},

		// Special widgets
		SectionPersonalAllowance: {Title: "Personal Allowance", ColorClass: "bg-white", Type: StyleExpense, Variant: VariantSlider},
		SectionPetrol:            {Title: "Petrol Calculator", ColorClass: "bg-slate-800", Type: StyleExpense, Variant: VariantPetrol},
		SectionVehicles:          {Title: "Vehicle Management", ColorClass: "bg-white", Type: StyleExpense, Variant: VariantVehicles},
		SectionNotes:             {Title: "Notes", ColorClass: "bg-white", Type: StyleExpense, Variant: VariantNote},
	}
}

// DefaultVehicles returns the seed vehicle records for a first-run sheet.
func DefaultVehicles() []VehicleDate {
	return []VehicleDate{
		{
			ID:            "v1",
			Reg:           "AV59FRO",
			InsuranceDate: "2025-02-25",
			TaxDate:       "2025-01-31",
			MOTDate:       "2025-09-29",
			PolicyNumber:  "136756207",
			Insurer:       "RAC Insurance",
		},
		{
			ID:            "v2",
			Reg:           "AV10UES",
			InsuranceDate: "2025-10-03",
			TaxDate:       "2025-10-01",
			MOTDate:       "2025-09-26",
			PolicyNumber:  "P77184727",
			Insurer:       "Admiral Insurance",
		},
	}
}

// DefaultPetrol returns the seed fuel calculator values.
func DefaultPetrol() PetrolData {
	return PetrolData{
		FuelPrice:      1.40,
		RefillsNeeded:  4,
		TankSizeLitres: 31.50,
		MilesPerTank:   260,
		EnteredMiles:   1040,
	}
}

func defaultSliders() map[string][]SliderItem {
	return map[string][]SliderItem{
		SectionPersonalAllowance: {
			{ID: uuid.NewString(), Name: "Chris", Value: 600, Max: 2000, Color: "lime"},
			{ID: uuid.NewString(), Name: "Dani", Value: 600, Max: 2000, Color: "cyan"},
		},
	}
}

func defaultTextSections() map[string]string {
	return map[string]string{SectionNotes: ""}
}

func seedTransactions() []Transaction {
	tx := func(name string, amount float64, t TransactionType) Transaction {
		return Transaction{ID: uuid.NewString(), Name: name, Amount: amount, Type: t}
	}
	return []Transaction{
		// Incoming
		tx("Left Over in Account", 0.00, TypeIncoming),
		tx("Chris' Wage", 2078.99, TypeIncoming),
		tx("Dani's Wage", 2828.31, TypeIncoming),

		// Main bills
		tx("Broadband - Vodafone Fibre", 25.00, TypeBillMain),
		tx("Council Tax", 153.00, TypeBillMain),
		tx("Energy - Octopus", 127.61, TypeBillMain),
		tx("iPhone Contract - Three", 20.50, TypeBillMain),
		tx("iPhone Contract - O2", 10.50, TypeBillMain),
		tx("Mortgage - Nationwide", 993.28, TypeBillMain),
		tx("TV Licence", 15.00, TypeBillMain),
		tx("Water", 52.00, TypeBillMain),

		// Cancellable
		tx("Public Liability - DL", 0.00, TypeBillCancellable),
		tx("Adobe - Photography", 14.99, TypeBillCancellable),
		tx("Boots - Contact Lenses", 29.25, TypeBillCancellable),
		tx("TruGym", 39.14, TypeBillCancellable),
		tx("Pure Gym", 17.39, TypeBillCancellable),
		tx("Spotify", 16.99, TypeBillCancellable),
		tx("Cinema", 23.98, TypeBillCancellable),
		tx("Lily Lifestyle", 5.99, TypeBillCancellable),
		tx("Green Man (Lawn Care)", 11.08, TypeBillCancellable),

		// Account pots
		tx("Car Maintenance", 130.00, TypePot),
		tx("Crumble", 60.00, TypePot),
		tx("Dani's Beauty Pot", 150.00, TypePot),
		tx("Home Improvements 2", 0.00, TypePot),
		tx("Food", 280.00, TypePot),
		tx("Home Improvements", 0.00, TypePot),
		tx("Holiday Pot", 0.00, TypePot),
		tx("House Bits", 80.00, TypePot),
		tx("Date Night", 0.00, TypePot),
		tx("Petrol", 176.00, TypePot),
		tx("Xmas Budget", 0.00, TypePot),
		tx("Garden", 10.00, TypePot),
		tx("Clothing Pot", 0.00, TypePot),

		// Standing orders
		tx("Netflix - Dani's Parents", 10.40, TypeStandingOrder),
	}
}

// NewInitialMonth builds the seeded sheet installed on first run,
// named after the current calendar month.
func NewInitialMonth(clock utils.Clock) BudgetMonth {
	now := clock.Now()
	return BudgetMonth{
		ID:            now.Format("2006-01"),
		FolderID:      nil,
		Name:          now.Format("January 2006"),
		Transactions:  seedTransactions(),
		Petrol:        DefaultPetrol(),
		Vehicles:      DefaultVehicles(),
		Sliders:       defaultSliders(),
		TextSections:  defaultTextSections(),
		Layout:        DefaultLayout(),
		SectionStyles: DefaultStyles(),
	}
}

// NewBlankMonth builds a fresh sheet from the default template, filed
// into the given folder.
func NewBlankMonth(clock utils.Clock, folderID *string) BudgetMonth {
	m := NewInitialMonth(clock)
	m.ID = uuid.NewString()
	m.FolderID = folderID
	m.Name = "New Budget Sheet"
	return m
}
