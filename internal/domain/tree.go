package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attributes is the flat set of fact values recorded for one neighbor,
// e.g. {"address": "10.0.0.2", "state": "FULL/DR"}.
type Attributes map[string]string

// orderedMap is a string-keyed map that preserves insertion order.
// All levels of a fact tree are built on it so that a walk over the
// tree always visits entries in the order they were observed or
// learned, which is the order the report renders them in.
type orderedMap[V any] struct {
	keys []string
	vals map[string]V
}

func (m *orderedMap[V]) set(key string, val V) {
	if m.vals == nil {
		m.vals = make(map[string]V)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	val, ok := m.vals[key]
	return val, ok
}

func (m *orderedMap[V]) length() int {
	return len(m.keys)
}

// orderedKeys returns a copy of the keys in insertion order.
func (m *orderedMap[V]) orderedKeys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// marshalJSON writes the map as a JSON object with keys in insertion order.
func (m *orderedMap[V]) marshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalJSON reads a JSON object token by token so that key order
// survives the round trip (encoding/json's map decoding would lose it).
func (m *orderedMap[V]) unmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	m.keys = nil
	m.vals = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var val V
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("decode value for %q: %w", key, err)
		}
		m.set(key, val)
	}
	// Consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// marshalYAML builds a yaml mapping node with keys in insertion order.
func (m *orderedMap[V]) marshalYAML() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.vals[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func (m *orderedMap[V]) unmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected YAML mapping, got %v", node.Kind)
	}
	m.keys = nil
	m.vals = nil
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var val V
		if err := node.Content[i+1].Decode(&val); err != nil {
			return fmt.Errorf("decode value for %q: %w", key, err)
		}
		m.set(key, val)
	}
	return nil
}

// FactTree maps device names to the per-interface facts observed on (or
// expected of) each device. Absence of a device means no fact was recorded
// for it; a device mapped to an empty DeviceFacts means the device was
// probed and had nothing to report. The two are deliberately distinct.
type FactTree struct {
	m orderedMap[*DeviceFacts]
}

// NewFactTree creates an empty fact tree.
func NewFactTree() *FactTree {
	return &FactTree{}
}

// SetDevice records facts for a device, preserving first-insertion order.
func (t *FactTree) SetDevice(name string, facts *DeviceFacts) {
	t.m.set(name, facts)
}

// Device returns the facts for a device and whether the device is present.
func (t *FactTree) Device(name string) (*DeviceFacts, bool) {
	if t == nil {
		return nil, false
	}
	return t.m.get(name)
}

// Devices returns device names in insertion order.
func (t *FactTree) Devices() []string {
	if t == nil {
		return nil
	}
	return t.m.orderedKeys()
}

// Len returns the number of devices in the tree.
func (t *FactTree) Len() int {
	if t == nil {
		return 0
	}
	return t.m.length()
}

// Empty reports whether the tree is nil or holds no devices at all.
func (t *FactTree) Empty() bool {
	return t == nil || t.m.length() == 0
}

func (t *FactTree) MarshalJSON() ([]byte, error)      { return t.m.marshalJSON() }
func (t *FactTree) UnmarshalJSON(data []byte) error   { return t.m.unmarshalJSON(data) }
func (t *FactTree) MarshalYAML() (interface{}, error) { return t.m.marshalYAML() }
func (t *FactTree) UnmarshalYAML(node *yaml.Node) error {
	return t.m.unmarshalYAML(node)
}

// DeviceFacts maps interface names to the facts recorded under each
// interface of a single device.
type DeviceFacts struct {
	m orderedMap[*InterfaceFacts]
}

// NewDeviceFacts creates an empty per-device fact set.
func NewDeviceFacts() *DeviceFacts {
	return &DeviceFacts{}
}

// SetInterface records facts for an interface.
func (d *DeviceFacts) SetInterface(name string, facts *InterfaceFacts) {
	d.m.set(name, facts)
}

// Interface returns the facts for an interface and whether it is present.
func (d *DeviceFacts) Interface(name string) (*InterfaceFacts, bool) {
	if d == nil {
		return nil, false
	}
	return d.m.get(name)
}

// Interfaces returns interface names in insertion order.
func (d *DeviceFacts) Interfaces() []string {
	if d == nil {
		return nil
	}
	return d.m.orderedKeys()
}

// Len returns the number of interfaces recorded for the device.
func (d *DeviceFacts) Len() int {
	if d == nil {
		return 0
	}
	return d.m.length()
}

// Empty reports whether no interfaces are recorded.
func (d *DeviceFacts) Empty() bool {
	return d == nil || d.m.length() == 0
}

func (d *DeviceFacts) MarshalJSON() ([]byte, error)      { return d.m.marshalJSON() }
func (d *DeviceFacts) UnmarshalJSON(data []byte) error   { return d.m.unmarshalJSON(data) }
func (d *DeviceFacts) MarshalYAML() (interface{}, error) { return d.m.marshalYAML() }
func (d *DeviceFacts) UnmarshalYAML(node *yaml.Node) error {
	return d.m.unmarshalYAML(node)
}

// InterfaceFacts holds the neighbors recorded under one interface.
type InterfaceFacts struct {
	Neighbors *NeighborSet `json:"neighbors" yaml:"neighbors"`
}

// NewInterfaceFacts creates an interface fact set with an empty neighbor set.
func NewInterfaceFacts() *InterfaceFacts {
	return &InterfaceFacts{Neighbors: NewNeighborSet()}
}

// NeighborSet maps neighbor router IDs to their recorded attributes.
type NeighborSet struct {
	m orderedMap[Attributes]
}

// NewNeighborSet creates an empty neighbor set.
func NewNeighborSet() *NeighborSet {
	return &NeighborSet{}
}

// Set records attributes for a neighbor.
func (n *NeighborSet) Set(id string, attrs Attributes) {
	n.m.set(id, attrs)
}

// Get returns a neighbor's attributes and whether the neighbor is present.
func (n *NeighborSet) Get(id string) (Attributes, bool) {
	if n == nil {
		return nil, false
	}
	return n.m.get(id)
}

// IDs returns neighbor router IDs in insertion order.
func (n *NeighborSet) IDs() []string {
	if n == nil {
		return nil
	}
	return n.m.orderedKeys()
}

// Len returns the number of neighbors in the set.
func (n *NeighborSet) Len() int {
	if n == nil {
		return 0
	}
	return n.m.length()
}

// Empty reports whether the set is nil or holds no neighbors.
func (n *NeighborSet) Empty() bool {
	return n == nil || n.m.length() == 0
}

func (n *NeighborSet) MarshalJSON() ([]byte, error)      { return n.m.marshalJSON() }
func (n *NeighborSet) UnmarshalJSON(data []byte) error   { return n.m.unmarshalJSON(data) }
func (n *NeighborSet) MarshalYAML() (interface{}, error) { return n.m.marshalYAML() }
func (n *NeighborSet) UnmarshalYAML(node *yaml.Node) error {
	return n.m.unmarshalYAML(node)
}
