package expense

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Values is the flat key → value map the entry form binds its inputs to.
// All values are kept as entered; numeric fields are parsed on demand.
type Values map[string]string

// TotalFunc derives the authoritative total amount of a submission from its
// value map.
type TotalFunc func(Values) decimal.Decimal

// ComputeTotal applies the category's total formula to the value map. Absent
// or unparseable numeric inputs contribute zero, so the result is always
// defined; the only possible error is an unknown category tag.
func ComputeTotal(category ExpenseCategory, values Values) (decimal.Decimal, error) {
	schema, err := SchemaFor(category)
	if err != nil {
		return decimal.Zero, err
	}
	return schema.Total(values), nil
}

// amount parses a single value with the form's lenient semantics: empty,
// missing, or malformed input counts as zero.
func amount(values Values, key string) decimal.Decimal {
	raw := strings.TrimSpace(values[key])
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func singleField(key string) TotalFunc {
	return func(values Values) decimal.Decimal {
		return amount(values, key)
	}
}

func sumFields(keys ...string) TotalFunc {
	return func(values Values) decimal.Decimal {
		total := decimal.Zero
		for _, key := range keys {
			total = total.Add(amount(values, key))
		}
		return total
	}
}
