package machinetool

type MachineToolType string

const (
	TypeMachine MachineToolType = "machine"
	TypeTool    MachineToolType = "tool"
)

type MachineToolStatus string

const (
	StatusAvailable   MachineToolStatus = "available"
	StatusInUse       MachineToolStatus = "in-use"
	StatusMaintenance MachineToolStatus = "maintenance"
)

// MachineTool is a machine or tool registered in the site inventory. Rental
// and purchase expenses pick from these entries.
type MachineTool struct {
	ID          string
	Name        string
	Type        MachineToolType
	Brand       string
	Status      MachineToolStatus
	Quantity    int
	Description string
}
