package budget

import (
	"github.com/google/uuid"
)

// Clone duplicates a sheet. Every owned collection is copied so that
// mutating the duplicate can never reach back into the source.
// Transactions get fresh ids and their paid flag is cleared; slider and
// vehicle items keep their ids, only the containers are copied.
func Clone(src BudgetMonth) BudgetMonth {
	dup := src
	dup.ID = uuid.NewString()
	dup.Name = src.Name + " Copy"

	dup.Transactions = make([]Transaction, len(src.Transactions))
	for i, t := range src.Transactions {
		t.ID = uuid.NewString()
		t.IsPaid = false
		dup.Transactions[i] = t
	}

	dup.Vehicles = append([]VehicleDate(nil), src.Vehicles...)
	dup.Layout = cloneLayout(src.Layout)
	dup.SectionStyles = cloneStyles(src.SectionStyles)
	dup.Sliders = cloneSliders(src.Sliders)
	dup.TextSections = cloneTextSections(src.TextSections)

	if src.Spending != nil {
		spending := *src.Spending
		dup.Spending = &spending
	}
	if src.FolderID != nil {
		folderID := *src.FolderID
		dup.FolderID = &folderID
	}

	return dup
}

func cloneLayout(l BudgetLayout) BudgetLayout {
	return BudgetLayout{
		Col1: append([]string(nil), l.Col1...),
		Col2: append([]string(nil), l.Col2...),
		Col3: append([]string(nil), l.Col3...),
	}
}

func cloneStyles(styles map[string]SectionStyle) map[string]SectionStyle {
	if styles == nil {
		return nil
	}
	out := make(map[string]SectionStyle, len(styles))
	for k, v := range styles {
		out[k] = v
	}
	return out
}

func cloneSliders(sliders map[string][]SliderItem) map[string][]SliderItem {
	if sliders == nil {
		return nil
	}
	out := make(map[string][]SliderItem, len(sliders))
	for k, group := range sliders {
		out[k] = append([]SliderItem(nil), group...)
	}
	return out
}

func cloneTextSections(sections map[string]string) map[string]string {
	if sections == nil {
		return nil
	}
	out := make(map[string]string, len(sections))
	for k, v := range sections {
		out[k] = v
	}
	return out
}
