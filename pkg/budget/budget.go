package budget

// TransactionType categorizes a transaction line. Anything outside the
// fixed set below is treated as a custom section id and classified
// through the sheet's section styles.
type TransactionType string

const (
	TypeIncoming        TransactionType = "INCOMING"
	TypeBillMain        TransactionType = "BILL_MAIN"
	TypeBillCancellable TransactionType = "BILL_CANCELLABLE"
	TypePot             TransactionType = "POT"
	TypeOneOff          TransactionType = "ONE_OFF"
	TypeStandingOrder   TransactionType = "STANDING_ORDER"
	TypeCustom          TransactionType = "CUSTOM"
)

// IsSystem reports whether t is one of the fixed transaction types.
func (t TransactionType) IsSystem() bool {
	switch t {
	case TypeIncoming, TypeBillMain, TypeBillCancellable, TypePot, TypeOneOff, TypeStandingOrder, TypeCustom:
		return true
	}
	return false
}

// Identifiers of the default sections of a sheet.
const (
	SectionIncoming          = "section_incoming"
	SectionPersonalAllowance = "section_personal_allowance"
	SectionBills             = "section_bills"
	SectionPots              = "section_pots"
	SectionCancellable       = "section_cancellable"
	SectionStandingOrders    = "section_standing_orders"
	SectionOneOffs           = "section_one_offs"
	SectionPetrol            = "section_petrol"
	SectionVehicles          = "section_vehicles"
	SectionNotes             = "section_notes"
)

// SectionVariant selects which widget renders a section and which
// aggregation rule applies to its data.
type SectionVariant string

const (
	VariantList     SectionVariant = "list"
	VariantSlider   SectionVariant = "slider"
	VariantNote     SectionVariant = "note"
	VariantPetrol   SectionVariant = "petrol"
	VariantVehicles SectionVariant = "vehicles"
)

// StyleType classifies a section for totals.
type StyleType string

const (
	StyleIncome  StyleType = "income"
	StyleExpense StyleType = "expense"
)

// SliderPalette is the fixed set of color tags available for sliders.
var SliderPalette = []string{"lime", "cyan", "blue", "violet", "fuchsia", "amber", "emerald", "rose"}

type Transaction struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount float64         `json:"amount"`
	Type   TransactionType `json:"type"`
	IsPaid bool            `json:"isPaid,omitempty"`
	Note   string          `json:"note,omitempty"`
}

type SliderItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
	Color string  `json:"color,omitempty"`
}

type VehicleDate struct {
	ID            string `json:"id"`
	Reg           string `json:"reg"`
	InsuranceDate string `json:"insuranceDate"`
	TaxDate       string `json:"taxDate"`
	MOTDate       string `json:"motDate"`
	ServiceDate   string `json:"serviceDate,omitempty"`
	PolicyNumber  string `json:"policyNumber"`
	Insurer       string `json:"insurer"`
}

// PetrolData holds the fuel cost calculator state. All derived figures
// are computed on demand and never stored.
type PetrolData struct {
	FuelPrice      float64 `json:"fuelPrice"`
	RefillsNeeded  float64 `json:"refillsNeeded"`
	TankSizeLitres float64 `json:"tankSizeLitres"`
	MilesPerTank   float64 `json:"milesPerTank"`
	EnteredMiles   float64 `json:"enteredMiles"`
}

// MonthlyBudget is the projected fuel spend: one tank cost times the
// number of refills.
func (p PetrolData) MonthlyBudget() float64 {
	return p.FuelPrice * p.TankSizeLitres * p.RefillsNeeded
}

func (p PetrolData) MilesPerLitre() float64 {
	if p.TankSizeLitres <= 0 {
		return 0
	}
	return p.MilesPerTank / p.TankSizeLitres
}

func (p PetrolData) CostPerMile() float64 {
	if p.MilesPerTank <= 0 {
		return 0
	}
	return p.FuelPrice * p.TankSizeLitres / p.MilesPerTank
}

// CostForEnteredMiles prices the journey distance the user typed in.
func (p PetrolData) CostForEnteredMiles() float64 {
	return p.CostPerMile() * p.EnteredMiles
}

// SpendingAllocations is the deprecated two-person allowance split.
// Retained only as a migration source for sliders.
type SpendingAllocations struct {
	Chris float64 `json:"chris"`
	Dani  float64 `json:"dani"`
}

type SectionStyle struct {
	Title      string         `json:"title"`
	ColorClass string         `json:"colorClass"`
	Type       StyleType      `json:"type,omitempty"`
	Variant    SectionVariant `json:"variant,omitempty"`
}

// BudgetLayout orders section ids into the three visual columns.
type BudgetLayout struct {
	Col1 []string `json:"col1"`
	Col2 []string `json:"col2"`
	Col3 []string `json:"col3"`
}

// IsZero reports whether no section has been laid out. A stored sheet
// predating layouts decodes to this state.
func (l BudgetLayout) IsZero() bool {
	return len(l.Col1) == 0 && len(l.Col2) == 0 && len(l.Col3) == 0
}

// SectionIDs returns every section id across the three columns.
func (l BudgetLayout) SectionIDs() []string {
	ids := make([]string, 0, len(l.Col1)+len(l.Col2)+len(l.Col3))
	ids = append(ids, l.Col1...)
	ids = append(ids, l.Col2...)
	ids = append(ids, l.Col3...)
	return ids
}

type Folder struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
	Color    string  `json:"color,omitempty"`
}

// BudgetMonth is one monthly budget sheet: the whole editable document.
// Transaction order is significant, it is the display order within each
// section. Sliders and text sections are keyed by section id.
type BudgetMonth struct {
	ID            string                  `json:"id"`
	FolderID      *string                 `json:"folderId"`
	Name          string                  `json:"name"`
	Transactions  []Transaction           `json:"transactions"`
	Petrol        PetrolData              `json:"petrol"`
	Vehicles      []VehicleDate           `json:"vehicles"`
	Sliders       map[string][]SliderItem `json:"sliders"`
	TextSections  map[string]string       `json:"textSections"`
	Layout        BudgetLayout            `json:"layout"`
	SectionStyles map[string]SectionStyle `json:"sectionStyles"`

	// Deprecated legacy fields, kept as migration sources only.
	Spending *SpendingAllocations `json:"spending,omitempty"`
	Notes    string               `json:"notes,omitempty"`
}
