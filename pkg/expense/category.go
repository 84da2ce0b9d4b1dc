package expense

import (
	"fmt"
)

// ExpenseCategory is the closed set of expense classifications. The category
// decides which fields the entry form shows and how the total amount is
// derived. It is fixed once an expense record is created.
type ExpenseCategory string

const (
	CategoryAccommodationFood ExpenseCategory = "accommodation-food"
	CategoryMachinesRental    ExpenseCategory = "machines-tools-rental"
	CategoryMaterialPurchase  ExpenseCategory = "material-purchase"
	CategoryRepairs           ExpenseCategory = "repairs"
	CategoryPercentages       ExpenseCategory = "percentages"
	CategoryToolPurchase      ExpenseCategory = "tool-purchase"
	CategoryWearTear          ExpenseCategory = "wear-tear"
	CategoryLossesDiscarded   ExpenseCategory = "losses-discarded"
	CategoryPetrolDiesel      ExpenseCategory = "petrol-diesel"
	CategoryMiscExpenses      ExpenseCategory = "misc-expenses"
	CategoryLabourAccount     ExpenseCategory = "labour-account"
	CategoryStaffAccount      ExpenseCategory = "staff-account"
)

var categoryLabels = map[ExpenseCategory]string{
	CategoryAccommodationFood: "Accommodation & Food",
	CategoryMachinesRental:    "Machines and Tools Rental",
	CategoryMaterialPurchase:  "Material Purchase",
	CategoryRepairs:           "Repairs",
	CategoryPercentages:       "Percentages",
	CategoryToolPurchase:      "Tools Purchase",
	CategoryWearTear:          "Wear & Tear Purchase",
	CategoryLossesDiscarded:   "Losses & Discarded Tools",
	CategoryPetrolDiesel:      "Petrol & Diesel",
	CategoryMiscExpenses:      "Miscellaneous Expenses",
	CategoryLabourAccount:     "Labour Account",
	CategoryStaffAccount:      "Staff Account",
}

// AllCategories returns the categories in the order the entry form presents
// them.
func AllCategories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryAccommodationFood,
		CategoryMachinesRental,
		CategoryMaterialPurchase,
		CategoryRepairs,
		CategoryPercentages,
		CategoryToolPurchase,
		CategoryWearTear,
		CategoryLossesDiscarded,
		CategoryPetrolDiesel,
		CategoryMiscExpenses,
		CategoryLabourAccount,
		CategoryStaffAccount,
	}
}

// Label returns the human-readable name of the category.
func (c ExpenseCategory) Label() string {
	return categoryLabels[c]
}

// IsValid reports whether c is one of the registered categories.
func (c ExpenseCategory) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// UnknownCategoryError marks a category tag that is not registered. It is a
// programming or configuration error rather than a user mistake, so callers
// should surface it loudly instead of falling back to a default schema.
type UnknownCategoryError struct {
	Category ExpenseCategory
}

func (e UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown expense category: %q", string(e.Category))
}
