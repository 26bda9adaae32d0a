package adapter

import (
	"reflect"
	"testing"
)

const sampleOutput = `
Neighbor ID     Pri   State           Dead Time   Address         Interface
2.2.2.2           1   FULL/DR         00:00:33    10.0.0.2        GigabitEthernet0/1
3.3.3.3           1   FULL/BDR        00:00:35    10.0.0.3        GigabitEthernet0/1
4.4.4.4           0   FULL/  -        00:00:31    10.0.0.6        GigabitEthernet0/2
`

func TestParseOSPFNeighbors(t *testing.T) {
	data := ParseOSPFNeighbors(sampleOutput)

	if got := data.Interfaces.Interfaces(); !reflect.DeepEqual(got, []string{"GigabitEthernet0/1", "GigabitEthernet0/2"}) {
		t.Fatalf("interfaces = %v", got)
	}

	gi1, ok := data.Interfaces.Interface("GigabitEthernet0/1")
	if !ok {
		t.Fatal("GigabitEthernet0/1 missing")
	}
	if got := gi1.Neighbors.IDs(); !reflect.DeepEqual(got, []string{"2.2.2.2", "3.3.3.3"}) {
		t.Fatalf("neighbor order = %v", got)
	}

	tests := []struct {
		iface    string
		neighbor string
		key      string
		want     string
	}{
		{"GigabitEthernet0/1", "2.2.2.2", "address", "10.0.0.2"},
		{"GigabitEthernet0/1", "2.2.2.2", "state", "FULL/DR"},
		{"GigabitEthernet0/1", "2.2.2.2", "priority", "1"},
		{"GigabitEthernet0/1", "2.2.2.2", "dead_time", "00:00:33"},
		{"GigabitEthernet0/1", "3.3.3.3", "state", "FULL/BDR"},
		{"GigabitEthernet0/2", "4.4.4.4", "address", "10.0.0.6"},
		// The point-to-point state column splits into two fields
		{"GigabitEthernet0/2", "4.4.4.4", "state", "FULL/-"},
	}

	for _, tt := range tests {
		iface, ok := data.Interfaces.Interface(tt.iface)
		if !ok {
			t.Errorf("interface %s missing", tt.iface)
			continue
		}
		attrs, ok := iface.Neighbors.Get(tt.neighbor)
		if !ok {
			t.Errorf("neighbor %s missing on %s", tt.neighbor, tt.iface)
			continue
		}
		if got := attrs[tt.key]; got != tt.want {
			t.Errorf("%s/%s %s = %q, want %q", tt.iface, tt.neighbor, tt.key, got, tt.want)
		}
	}
}

func TestParseOSPFNeighborsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"blank output", ""},
		{"header only", "Neighbor ID     Pri   State           Dead Time   Address         Interface"},
		{"no adjacencies message", "% OSPF: No neighbors found"},
	}

	for _, tt := range tests {
		data := ParseOSPFNeighbors(tt.output)
		if data.Interfaces == nil {
			t.Errorf("%s: Interfaces is nil, want present-and-empty", tt.name)
			continue
		}
		if !data.Interfaces.Empty() {
			t.Errorf("%s: parsed %v, want no interfaces", tt.name, data.Interfaces.Interfaces())
		}
	}
}
