package material

// Material is a construction material registered in the inventory, selectable
// in material purchase expenses.
type Material struct {
	ID          string
	Name        string
	Category    string
	Description string
}
