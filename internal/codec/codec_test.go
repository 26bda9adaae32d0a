package codec

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"ospfwatch/internal/domain"
)

func testTree() *domain.FactTree {
	tree := domain.NewFactTree()
	dev := domain.NewDeviceFacts()
	iface := domain.NewInterfaceFacts()
	iface.Neighbors.Set("2.2.2.2", domain.Attributes{"address": "10.0.0.2", "state": "FULL/DR"})
	iface.Neighbors.Set("3.3.3.3", domain.Attributes{"address": "10.0.0.3", "state": "FULL/BDR"})
	dev.SetInterface("GigabitEthernet0/1", iface)
	tree.SetDevice("R1", dev)
	return tree
}

func TestCodecRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		c, ok := ByFormat(format)
		if !ok {
			t.Fatalf("ByFormat(%s) not found", format)
		}

		var buf bytes.Buffer
		if err := c.Export(testTree(), &buf); err != nil {
			t.Fatalf("%s Export: %v", format, err)
		}

		parsed, err := c.Parse(&buf)
		if err != nil {
			t.Fatalf("%s Parse: %v", format, err)
		}

		dev, ok := parsed.Device("R1")
		if !ok {
			t.Fatalf("%s: R1 missing after round trip", format)
		}
		iface, ok := dev.Interface("GigabitEthernet0/1")
		if !ok {
			t.Fatalf("%s: interface missing after round trip", format)
		}
		if got := iface.Neighbors.IDs(); !reflect.DeepEqual(got, []string{"2.2.2.2", "3.3.3.3"}) {
			t.Errorf("%s: neighbor order = %v", format, got)
		}
		attrs, _ := iface.Neighbors.Get("2.2.2.2")
		if attrs["state"] != "FULL/DR" {
			t.Errorf("%s: state = %q", format, attrs["state"])
		}
	}
}

func TestJSONParsePreservesHandEditedOrder(t *testing.T) {
	// Keys deliberately out of alphabetical order
	input := `{
		"R2": {"GigabitEthernet0/2": {"neighbors": {"9.9.9.9": {"address": "10.9.0.1"}}}},
		"R1": {}
	}`

	tree, err := NewJSONCodec().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := tree.Devices(); !reflect.DeepEqual(got, []string{"R2", "R1"}) {
		t.Errorf("device order = %v, want [R2 R1]", got)
	}
	r1, ok := tree.Device("R1")
	if !ok || !r1.Empty() {
		t.Errorf("R1 should be present and empty, got ok=%v facts=%v", ok, r1)
	}
}

func TestByFormatUnknown(t *testing.T) {
	if _, ok := ByFormat("xml"); ok {
		t.Error("ByFormat(xml) should not resolve")
	}
}
