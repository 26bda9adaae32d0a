package adapter

import (
	"net"
	"strings"

	"ospfwatch/internal/domain"
)

// ParseOSPFNeighbors parses `show ip ospf neighbor` output from an IOS-XE
// device into the interfaces/neighbors structure exposed by ProbeData.
//
// Example output:
//
//	Neighbor ID     Pri   State           Dead Time   Address         Interface
//	2.2.2.2           1   FULL/DR         00:00:33    10.0.0.2        GigabitEthernet0/1
//	3.3.3.3           1   FULL/  -        00:00:31    10.0.0.6        GigabitEthernet0/2
//
// Interfaces and neighbors keep the order they appear in the output.
// A device with no adjacencies produces an empty interface set, not nil.
func ParseOSPFNeighbors(output string) *ProbeData {
	data := &ProbeData{Interfaces: domain.NewDeviceFacts()}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		// Neighbor rows have at least: id, pri, state, dead-time, address, interface.
		// The state column may split in two ("FULL/  -" -> "FULL/", "-").
		if len(fields) < 6 {
			continue
		}
		// Header and banner lines never start with a router ID
		if net.ParseIP(fields[0]) == nil {
			continue
		}

		n := len(fields)
		neighborID := fields[0]
		priority := fields[1]
		state := strings.Join(fields[2:n-3], "")
		deadTime := fields[n-3]
		address := fields[n-2]
		ifName := fields[n-1]

		iface, ok := data.Interfaces.Interface(ifName)
		if !ok {
			iface = domain.NewInterfaceFacts()
			data.Interfaces.SetInterface(ifName, iface)
		}
		iface.Neighbors.Set(neighborID, domain.Attributes{
			"address":   address,
			"state":     state,
			"priority":  priority,
			"dead_time": deadTime,
		})
	}

	return data
}
