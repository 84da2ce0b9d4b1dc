package expense

// FieldKind is the input widget an entry-form field renders as.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldDate     FieldKind = "date"
	FieldSelect   FieldKind = "select"
	FieldTextarea FieldKind = "textarea"
	FieldTel      FieldKind = "tel"
)

// OptionSource is a reference token standing in for a select field's options
// until the materializer resolves it against a live collection.
type OptionSource string

const (
	OptionsSiteList        OptionSource = "siteList"
	OptionsMachineToolList OptionSource = "machineToolList"
	OptionsMaterialList    OptionSource = "materialList"
	OptionsStaffList       OptionSource = "staffList"
)

// Option is one selectable choice of a select field: the value submitted and
// the label shown.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDescriptor declares one input of a category's entry form. Descriptors
// are static; Materialize copies them and fills in reference options.
type FieldDescriptor struct {
	Key      string
	Label    string
	Kind     FieldKind
	Required bool
	// Options holds fixed choices; Source (when set) defers them to a
	// reference collection resolved by Materialize.
	Options []Option
	Source  OptionSource
	// Min and Step constrain number fields, expressed as the form attribute
	// values ("0", "0.01", "1").
	Min  string
	Step string
	// VisibleIf hides the field unless the predicate holds for the current
	// value map. Nil means always visible. Re-evaluated on every change.
	VisibleIf func(Values) bool
}

// CategorySchema couples a category's field list with its total formula so
// each category is self-describing and testable on its own.
type CategorySchema struct {
	Category ExpenseCategory
	Fields   []FieldDescriptor
	Total    TotalFunc
}

// SchemaFor returns the schema registered for the category. There is no
// default: an unregistered tag yields UnknownCategoryError.
func SchemaFor(category ExpenseCategory) (CategorySchema, error) {
	schema, ok := schemas[category]
	if !ok {
		return CategorySchema{}, UnknownCategoryError{Category: category}
	}
	return schema, nil
}

var paymentMethodOptions = fixedOptions(
	"Cash", "Bank Transfer", "Cheque", "UPI", "Credit Card", "Debit Card",
)

var unitOfMeasureOptions = fixedOptions(
	"bags", "kg", "tonne", "litre", "pieces", "meter", "sqft", "cubic meter",
)

var yesNoOptions = fixedOptions("yes", "no")

func fixedOptions(values ...string) []Option {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{Value: v, Label: v})
	}
	return options
}

func text(key, label string, required bool) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, Kind: FieldText, Required: required}
}

func textarea(key, label string, required bool) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, Kind: FieldTextarea, Required: required}
}

func tel(key, label string) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, Kind: FieldTel}
}

func date(key, label string, required bool) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, Kind: FieldDate, Required: required}
}

func number(key, label string, required bool, min, step string) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, Kind: FieldNumber, Required: required, Min: min, Step: step}
}

func selectFixed(key, label string, required bool, options []Option) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, Kind: FieldSelect, Required: required, Options: options}
}

func selectRef(key, label string, required bool, source OptionSource) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, Kind: FieldSelect, Required: required, Source: source}
}

// schemas is the registry: one immutable schema per category, keyed by tag.
// Adding a category means adding an entry here, nothing else.
var schemas = map[ExpenseCategory]CategorySchema{
	CategoryAccommodationFood: {
		Category: CategoryAccommodationFood,
		Fields: []FieldDescriptor{
			selectFixed("category", "Category", true, fixedOptions("food", "accommodation")),
			number("amount", "Amount (₹)", true, "0", "0.01"),
			selectFixed("paymentMethod", "Payment Method", true, paymentMethodOptions),
			number("quantityAccommodation", "Quantity", true, "0", "1"),
			textarea("description", "Description", true),
			textarea("notes", "Notes", false),
		},
		Total: singleField("amount"),
	},
	CategoryMachinesRental: {
		Category: CategoryMachinesRental,
		Fields: []FieldDescriptor{
			selectFixed("rentalCategory", "Category", true, fixedOptions("machine", "tool")),
			selectRef("machineToolName", "Machine or Tool Name", true, OptionsMachineToolList),
			number("rentalQuantity", "Quantity", true, "1", "1"),
			text("vendorName", "Vendor/Supplier Name", true),
			tel("vendorContact", "Vendor Contact Number"),
			number("duration", "Duration", true, "1", "1"),
			selectFixed("durationType", "Duration Type", true, fixedOptions("days", "weekly", "monthly", "hrly")),
			number("rentPer", "Rent Per", true, "0", "0.01"),
			selectFixed("rentPerType", "Rent Per Type", true, fixedOptions("hrly", "monthly", "weekly", "daily")),
			number("totalRent", "Total Rent (₹)", true, "0", "0.01"),
			number("transportChargesRental", "Transport Charges (₹)", false, "0", "0.01"),
			number("maintenanceCharges", "Maintenance/Damage Charges (₹)", false, "0", "0.01"),
			selectFixed("paymentMethod", "Payment Method", true, paymentMethodOptions),
			textarea("notes", "Notes", false),
		},
		// The entry form has historically submitted the transport charge
		// under either key, so both are summed; only one is ever present.
		Total: sumFields("totalRent", "transportCharges", "transportChargesRental", "maintenanceCharges"),
	},
	CategoryToolPurchase: {
		Category: CategoryToolPurchase,
		Fields: []FieldDescriptor{
			selectRef("toolName", "Tool Name", true, OptionsMachineToolList),
			number("quantityPurchased", "Quantity Purchased", true, "1", "1"),
			number("pricePerUnit", "Price Per Unit (₹)", true, "0", "0.01"),
			number("totalAmount", "Total Amount (₹)", true, "0", "0.01"),
			text("brandModel", "Brand Model", false),
			text("vendorSupplier", "Vendor/Supplier Name", true),
			tel("vendorContactTool", "Vendor Contact Number"),
			selectFixed("paymentMethod", "Payment Method", true, paymentMethodOptions),
			selectFixed("warranty", "Warranty", true, yesNoOptions),
		},
		Total: singleField("totalAmount"),
	},
	CategoryWearTear: {
		Category: CategoryWearTear,
		Fields: []FieldDescriptor{
			text("itemName", "Item Name", true),
			number("wearQuantity", "Quantity", true, "1", "1"),
			selectFixed("wearUnitOfMeasure", "Unit of Measure", true, unitOfMeasureOptions),
			number("wearUnitPrice", "Unit Price (₹)", true, "0", "0.01"),
			number("wearTotalAmount", "Total Amount (₹)", true, "0", "0.01"),
			text("wearVendorName", "Vendor Name", true),
			tel("wearContactNumber", "Vendor Contact Number"),
			selectFixed("paymentMethod", "Payment Method", true, paymentMethodOptions),
		},
		Total: singleField("wearTotalAmount"),
	},
	CategoryLabourAccount: {
		Category: CategoryLabourAccount,
		Fields:   labourFields("Labour Name"),
		Total:    singleField("totalAmountLabour"),
	},
	CategoryStaffAccount: {
		Category: CategoryStaffAccount,
		Fields:   labourFields("Staff Name"),
		Total:    singleField("totalAmountLabour"),
	},
	CategoryMaterialPurchase: {
		Category: CategoryMaterialPurchase,
		Fields: []FieldDescriptor{
			selectRef("materialName", "Material Name", true, OptionsMaterialList),
			number("quantityMaterial", "Quantity", true, "0", "0.01"),
			selectFixed("unitOfMeasure", "Unit of Measure", true, fixedOptions("bags", "pieces", "kg", "metre", "tonne")),
			number("ratePerUnit", "Rate Per Unit (₹)", true, "0", "0.01"),
			number("totalAmountTool", "Total Amount (₹)", true, "0", "0.01"),
			text("supplierName", "Supplier Name", true),
			tel("supplierContact", "Supplier Contact Number"),
			selectFixed("paymentMethod", "Payment Method", true, paymentMethodOptions),
			number("transportChargesMaterial", "Transport Charges (₹)", false, "0", "0.01"),
			textarea("notes", "Notes", false),
		},
		Total: sumFields("totalAmountTool", "transportChargesMaterial"),
	},
	CategoryRepairs: {
		Category: CategoryRepairs,
		Fields: []FieldDescriptor{
			text("itemMachineToolName", "Item/Machine/Tool Name", true),
			selectFixed("assetType", "Asset Type", true, fixedOptions("machine", "tool")),
			textarea("problemDescription", "Problem Description", true),
			text("workshopName", "Workshop Name", true),
			textarea("partsReplaced", "Parts Replaced", false),
			number("sparePartsCost", "Spare Parts Cost (₹)", false, "0", "0.01"),
			number("labourCharges", "Labour Charges (₹)", false, "0", "0.01"),
			number("transportChargesRepair", "Transport Charges (₹)", false, "0", "0.01"),
			number("totalCostRepair", "Total Cost (₹)", true, "0", "0.01"),
			selectFixed("paymentMethod", "Payment Method", true, paymentMethodOptions),
			selectFixed("warrantyRepair", "Warranty", true, yesNoOptions),
			warrantyDate("warrantyStartDate", "Warranty Start Date"),
			warrantyDate("warrantyEndDate", "Warranty End Date"),
			textarea("notes", "Notes", false),
		},
		Total: singleField("totalCostRepair"),
	},
	CategoryPetrolDiesel: {
		Category: CategoryPetrolDiesel,
		Fields: []FieldDescriptor{
			selectFixed("fuelCategory", "Category", true, fixedOptions("diesel", "petrol", "others")),
			number("fuelQuantity", "Quantity", true, "0", "0.01"),
			number("costPerUnit", "Cost Per Unit (₹)", true, "0", "0.01"),
			number("totalCostFuel", "Total Cost (₹)", true, "0", "0.01"),
			textarea("notes", "Notes", false),
		},
		Total: singleField("totalCostFuel"),
	},
	CategoryPercentages:     remainingSchema(CategoryPercentages),
	CategoryLossesDiscarded: remainingSchema(CategoryLossesDiscarded),
	CategoryMiscExpenses:    remainingSchema(CategoryMiscExpenses),
}

// labourFields is shared by labour and staff accounts; only the name field's
// label and option filtering differ between the two.
func labourFields(nameLabel string) []FieldDescriptor {
	return []FieldDescriptor{
		selectRef("labourName", nameLabel, true, OptionsStaffList),
		text("role", "Role", true),
		selectFixed("employeeType", "Employee Type", true, fixedOptions("weekly", "daily", "hrly", "monthly")),
		tel("contactNumber", "Contact Number"),
		number("attendance", "Attendance", true, "0", "0.1"),
		number("pricePer", "Price Per", true, "0", "0.01"),
		selectFixed("pricePerType", "Price Per Type", true, fixedOptions("weekly", "hrly", "monthly", "daily")),
		number("totalAmountLabour", "Total Amount (₹)", true, "0", "0.01"),
	}
}

// remainingSchema is the catch-all shape for categories without dedicated
// fields: a directly entered total plus free-form details.
func remainingSchema(category ExpenseCategory) CategorySchema {
	return CategorySchema{
		Category: category,
		Fields: []FieldDescriptor{
			number("totalAmountRemaining", "Total Amount (₹)", true, "0", "0.01"),
			textarea("notes", "Notes", false),
			textarea("description", "Description", false),
			selectFixed("paymentMethod", "Payment Method", true, paymentMethodOptions),
			text("supplierVendorName", "Supplier/Vendor Name", false),
			tel("supplierVendorContact", "Supplier/Vendor Contact Number"),
		},
		Total: singleField("totalAmountRemaining"),
	}
}

func warrantyDate(key, label string) FieldDescriptor {
	fd := date(key, label, true)
	fd.VisibleIf = func(values Values) bool {
		return values["warrantyRepair"] == "yes"
	}
	return fd
}
