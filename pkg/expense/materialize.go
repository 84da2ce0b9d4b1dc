package expense

import (
	"fmt"

	"github.com/siteledger/siteledger/pkg/labourstaff"
	"github.com/siteledger/siteledger/pkg/machinetool"
	"github.com/siteledger/siteledger/pkg/material"
	"github.com/siteledger/siteledger/pkg/site"
)

// ReferenceData carries the already-fetched collections the materializer
// resolves reference tokens against. Materialize itself never touches the
// store.
type ReferenceData struct {
	Sites         []site.Site
	MachinesTools []machinetool.MachineTool
	Materials     []material.Material
	LabourStaff   []labourstaff.Person
}

// Materialize produces the complete, ordered field list for one form
// instance: the three common fields (date, site, expense type) followed by
// the category-specific fields with reference tokens resolved to (id, label)
// option pairs. Conditional fields are re-evaluated against the current
// value map, so callers should re-materialize whenever values change.
func Materialize(category ExpenseCategory, values Values, refs ReferenceData) ([]FieldDescriptor, error) {
	schema, err := SchemaFor(category)
	if err != nil {
		return nil, err
	}

	fields := make([]FieldDescriptor, 0, len(schema.Fields)+3)
	fields = append(fields, commonFields(refs)...)
	for _, fd := range schema.Fields {
		if fd.VisibleIf != nil && !fd.VisibleIf(values) {
			continue
		}
		if fd.Source != "" {
			fd.Options = resolveOptions(category, fd.Source, refs)
		}
		fields = append(fields, fd)
	}
	return fields, nil
}

// commonFields are always presented first, in this fixed order, for every
// category.
func commonFields(refs ReferenceData) []FieldDescriptor {
	siteField := selectRef("siteId", "Site Name", true, OptionsSiteList)
	siteField.Options = resolveOptions("", OptionsSiteList, refs)

	typeOptions := make([]Option, 0, len(AllCategories()))
	for _, category := range AllCategories() {
		typeOptions = append(typeOptions, Option{Value: string(category), Label: category.Label()})
	}

	return []FieldDescriptor{
		date("date", "Date", true),
		siteField,
		selectFixed("expenseType", "Expense Type", true, typeOptions),
	}
}

func resolveOptions(category ExpenseCategory, source OptionSource, refs ReferenceData) []Option {
	switch source {
	case OptionsSiteList:
		options := make([]Option, 0, len(refs.Sites))
		for _, s := range refs.Sites {
			options = append(options, Option{Value: s.ID, Label: s.Name})
		}
		return options
	case OptionsMachineToolList:
		return machineToolOptions(category, refs.MachinesTools)
	case OptionsMaterialList:
		options := make([]Option, 0, len(refs.Materials))
		for _, m := range refs.Materials {
			options = append(options, Option{Value: m.ID, Label: displayLabel(m.Name, m.Category, "Material")})
		}
		return options
	case OptionsStaffList:
		return labourStaffOptions(category, refs.LabourStaff)
	default:
		return nil
	}
}

func machineToolOptions(category ExpenseCategory, items []machinetool.MachineTool) []Option {
	options := make([]Option, 0, len(items))
	for _, item := range items {
		// Tool purchases only offer entries registered as tools.
		if category == CategoryToolPurchase && item.Type != machinetool.TypeTool {
			continue
		}
		if category == CategoryToolPurchase {
			options = append(options, Option{Value: item.ID, Label: displayLabel(item.Name, item.Brand, "Tool")})
		} else {
			options = append(options, Option{Value: item.ID, Label: displayLabel(item.Name, string(item.Type), "Machine/Tool")})
		}
	}
	return options
}

func labourStaffOptions(category ExpenseCategory, people []labourstaff.Person) []Option {
	options := make([]Option, 0, len(people))
	for _, person := range people {
		// Staff accounts only offer entries registered as staff.
		if category == CategoryStaffAccount && person.Type != labourstaff.TypeStaff {
			continue
		}
		options = append(options, Option{Value: person.ID, Label: displayLabel(person.Name, person.Designation, "Staff")})
	}
	return options
}

func displayLabel(name, detail, fallback string) string {
	if detail == "" {
		detail = fallback
	}
	return fmt.Sprintf("%s - %s", name, detail)
}
