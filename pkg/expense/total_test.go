package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		category ExpenseCategory
		values   Values
		want     string
	}{
		{
			name:     "accommodation food uses the amount field",
			category: CategoryAccommodationFood,
			values:   Values{"amount": "1500", "description": "monthly mess bill"},
			want:     "1500",
		},
		{
			name:     "rental sums rent, transport, and maintenance",
			category: CategoryMachinesRental,
			values:   Values{"totalRent": "2000", "transportChargesRental": "300", "maintenanceCharges": "150"},
			want:     "2450",
		},
		{
			name:     "rental accepts the legacy transport key",
			category: CategoryMachinesRental,
			values:   Values{"totalRent": "2000", "transportCharges": "300", "maintenanceCharges": "150"},
			want:     "2450",
		},
		{
			name:     "rental with only total rent",
			category: CategoryMachinesRental,
			values:   Values{"totalRent": "2000"},
			want:     "2000",
		},
		{
			name:     "material purchase adds transport charges",
			category: CategoryMaterialPurchase,
			values:   Values{"totalAmountTool": "5000", "transportChargesMaterial": "200"},
			want:     "5200",
		},
		{
			name:     "material purchase without transport charges",
			category: CategoryMaterialPurchase,
			values:   Values{"totalAmountTool": "5000"},
			want:     "5000",
		},
		{
			name:     "tool purchase uses the total amount field",
			category: CategoryToolPurchase,
			values:   Values{"totalAmount": "3200", "pricePerUnit": "800", "quantityPurchased": "4"},
			want:     "3200",
		},
		{
			name:     "wear and tear uses its own total field",
			category: CategoryWearTear,
			values:   Values{"wearTotalAmount": "450.50"},
			want:     "450.5",
		},
		{
			name:     "labour account uses the labour total",
			category: CategoryLabourAccount,
			values:   Values{"totalAmountLabour": "1200", "pricePer": "600", "attendance": "2"},
			want:     "1200",
		},
		{
			name:     "staff account uses the labour total",
			category: CategoryStaffAccount,
			values:   Values{"totalAmountLabour": "25000"},
			want:     "25000",
		},
		{
			name:     "repairs uses the repair total cost",
			category: CategoryRepairs,
			values:   Values{"totalCostRepair": "980", "sparePartsCost": "400", "labourCharges": "500"},
			want:     "980",
		},
		{
			name:     "fuel uses the fuel total cost",
			category: CategoryPetrolDiesel,
			values:   Values{"totalCostFuel": "3040", "fuelQuantity": "32", "costPerUnit": "95"},
			want:     "3040",
		},
		{
			name:     "percentages uses the remaining total",
			category: CategoryPercentages,
			values:   Values{"totalAmountRemaining": "7500"},
			want:     "7500",
		},
		{
			name:     "losses discarded uses the remaining total",
			category: CategoryLossesDiscarded,
			values:   Values{"totalAmountRemaining": "600"},
			want:     "600",
		},
		{
			name:     "misc expenses uses the remaining total",
			category: CategoryMiscExpenses,
			values:   Values{"totalAmountRemaining": "150"},
			want:     "150",
		},
		{
			name:     "empty values compute to zero",
			category: CategoryMachinesRental,
			values:   Values{},
			want:     "0",
		},
		{
			name:     "malformed numbers count as zero",
			category: CategoryMachinesRental,
			values:   Values{"totalRent": "abc", "transportChargesRental": "300"},
			want:     "300",
		},
		{
			name:     "blank strings count as zero",
			category: CategoryMaterialPurchase,
			values:   Values{"totalAmountTool": "", "transportChargesMaterial": "  "},
			want:     "0",
		},
		{
			name:     "decimal inputs keep their precision",
			category: CategoryMaterialPurchase,
			values:   Values{"totalAmountTool": "5000.25", "transportChargesMaterial": "199.75"},
			want:     "5200",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ComputeTotal(tt.category, tt.values)
			assert.NoError(t, err)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", total, tt.want)
		})
	}

	t.Run("unknown category returns an error", func(t *testing.T) {
		_, err := ComputeTotal("vehicle-lease", Values{"amount": "100"})
		assert.Error(t, err)
	})

	t.Run("does not modify the value map", func(t *testing.T) {
		values := Values{"totalRent": "2000", "transportChargesRental": "300"}

		_, err := ComputeTotal(CategoryMachinesRental, values)
		assert.NoError(t, err)

		assert.Equal(t, Values{"totalRent": "2000", "transportChargesRental": "300"}, values)
	})

	t.Run("repeated calls give the same result", func(t *testing.T) {
		values := Values{"totalAmountTool": "5000", "transportChargesMaterial": "200"}

		first, err := ComputeTotal(CategoryMaterialPurchase, values)
		assert.NoError(t, err)
		second, err := ComputeTotal(CategoryMaterialPurchase, values)
		assert.NoError(t, err)

		assert.True(t, first.Equal(second))
	})
}
