package budget

import (
	"github.com/google/uuid"
)

// Migrate upgrades a stored month of any vintage to the current schema.
// It is total: whatever shape survived decoding comes out as a
// display-ready document, and running it twice changes nothing.
func Migrate(m BudgetMonth) BudgetMonth {
	if m.Layout.IsZero() {
		m.Layout = DefaultLayout()
	}
	if m.SectionStyles == nil {
		m.SectionStyles = DefaultStyles()
	}

	for key, style := range m.SectionStyles {
		if style.Type == "" {
			if key == SectionIncoming {
				style.Type = StyleIncome
			} else {
				style.Type = StyleExpense
			}
		}
		if style.Variant == "" {
			style.Variant = defaultVariantFor(key)
		}
		m.SectionStyles[key] = style
	}

	if m.Sliders == nil {
		m.Sliders = map[string][]SliderItem{}
		if m.Spending != nil {
			m.Sliders[SectionPersonalAllowance] = []SliderItem{
				{ID: uuid.NewString(), Name: "Chris", Value: m.Spending.Chris, Max: 2000, Color: "lime"},
				{ID: uuid.NewString(), Name: "Dani", Value: m.Spending.Dani, Max: 2000, Color: "cyan"},
			}
		} else {
			m.Sliders[SectionPersonalAllowance] = []SliderItem{
				{ID: uuid.NewString(), Name: "Chris", Value: 600, Max: 2000, Color: "lime"},
				{ID: uuid.NewString(), Name: "Dani", Value: 600, Max: 2000, Color: "cyan"},
			}
		}
	} else {
		// Sliders saved before colors existed alternate through the
		// first two palette entries.
		for section, group := range m.Sliders {
			for i, s := range group {
				if s.Color == "" {
					if i%2 == 0 {
						s.Color = "lime"
					} else {
						s.Color = "cyan"
					}
					group[i] = s
				}
			}
			m.Sliders[section] = group
		}
	}

	for i, v := range m.Vehicles {
		if v.ServiceDate == "" {
			v.ServiceDate = v.MOTDate
			m.Vehicles[i] = v
		}
	}

	if m.TextSections == nil {
		m.TextSections = map[string]string{SectionNotes: m.Notes}
	}

	return m
}

// defaultVariantFor is the fixed lookup used when a stored style
// predates widget variants.
func defaultVariantFor(sectionID string) SectionVariant {
	switch sectionID {
	case SectionPersonalAllowance:
		return VariantSlider
	case SectionNotes:
		return VariantNote
	case SectionPetrol:
		return VariantPetrol
	case SectionVehicles:
		return VariantVehicles
	default:
		return VariantList
	}
}
