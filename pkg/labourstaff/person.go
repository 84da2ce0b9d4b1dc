package labourstaff

type PersonType string

const (
	TypeLabour PersonType = "labour"
	TypeStaff  PersonType = "staff"
)

// Person is a labourer or staff member registered for the sites. Labour and
// staff account expenses pick from these entries; staff accounts only see
// entries of type "staff".
type Person struct {
	ID          string
	Name        string
	Type        PersonType
	Designation string
	Contact     string
	Address     string
	Notes       string
}
