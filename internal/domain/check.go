package domain

// Check describes one verification job: the device command it runs and
// the neighbor attributes it records and compares. Only the listed
// attributes are copied into a fact tree; everything else a parser
// produces is ignored by the check.
type Check struct {
	// Name is the stable identifier used for snapshot keys and report files.
	Name string
	// Title is the human-readable heading for reports.
	Title string
	// Command is the CLI command executed on each target device.
	Command string
	// Attributes lists the neighbor attribute keys this check cares about.
	Attributes []string
}

// The two built-in OSPF neighbor checks.
var (
	CheckNeighborAddress = Check{
		Name:       "ospf_neighbors_ip_addresses",
		Title:      "OSPF IPv4 Neighbors IP Addresses",
		Command:    "show ip ospf neighbor",
		Attributes: []string{"address"},
	}

	CheckNeighborState = Check{
		Name:       "ospf_neighbors_status",
		Title:      "OSPF IPv4 Neighbors Status",
		Command:    "show ip ospf neighbor",
		Attributes: []string{"state"},
	}
)

// Checks lists all built-in checks in execution order.
var Checks = []Check{CheckNeighborAddress, CheckNeighborState}

// CheckByName looks up a built-in check by its identifier.
func CheckByName(name string) (Check, bool) {
	for _, c := range Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}
