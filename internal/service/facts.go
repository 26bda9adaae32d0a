package service

import (
	"context"
	"fmt"
	"log"

	"ospfwatch/internal/adapter"
	"ospfwatch/internal/domain"
)

// FactService gathers the current OSPF state of target devices into a
// fact tree. Every per-device failure degrades to a result record and
// the next device is processed; collection never aborts the run.
type FactService struct {
	probe   adapter.Probe
	results *domain.Collector
}

// NewFactService creates a fact service reporting into the given collector.
func NewFactService(probe adapter.Probe, results *domain.Collector) *FactService {
	return &FactService{probe: probe, results: results}
}

// Collect runs the check's command on every target and builds the
// observed tree. Only the attributes the check cares about are copied
// into the tree.
//
// Per-device outcomes:
//   - no probe result at all: failed result, device left out of the tree
//   - result with no interfaces: info result, device kept with an empty
//     interface map (probed-and-empty is not the same as missing)
//   - interface with no neighbors: dropped from the tree entirely
func (s *FactService) Collect(ctx context.Context, check domain.Check, targets []string) *domain.FactTree {
	tree := domain.NewFactTree()

	parsed := s.probe.Execute(ctx, check.Command, targets)

	for _, deviceName := range targets {
		result, ok := parsed[deviceName]
		if !ok || result == nil {
			s.results.Add(domain.StatusFailed,
				fmt.Sprintf("No OSPF data found for device %s", deviceName))
			continue
		}

		data := result.Data
		if data == nil || data.Interfaces.Empty() {
			log.Printf("No OSPF interfaces found on %s", deviceName)
			tree.SetDevice(deviceName, domain.NewDeviceFacts())
			s.results.Add(domain.StatusInfo,
				fmt.Sprintf("No OSPF interfaces found on %s", deviceName))
			continue
		}

		deviceFacts := domain.NewDeviceFacts()
		for _, ifName := range data.Interfaces.Interfaces() {
			iface, _ := data.Interfaces.Interface(ifName)
			if iface == nil || iface.Neighbors.Empty() {
				continue
			}

			ifaceFacts := domain.NewInterfaceFacts()
			for _, neighborID := range iface.Neighbors.IDs() {
				attrs, _ := iface.Neighbors.Get(neighborID)

				recorded := make(domain.Attributes, len(check.Attributes))
				for _, key := range check.Attributes {
					recorded[key] = attrs[key]
				}
				ifaceFacts.Neighbors.Set(neighborID, recorded)

				for _, key := range check.Attributes {
					s.results.Add(domain.StatusInfo,
						fmt.Sprintf("Found neighbor %s with %s %q on interface %s of device %s",
							neighborID, key, recorded[key], ifName, deviceName))
				}
			}
			deviceFacts.SetInterface(ifName, ifaceFacts)
		}

		tree.SetDevice(deviceName, deviceFacts)
		s.results.Add(domain.StatusPassed,
			fmt.Sprintf("Successfully gathered OSPF data from %s", deviceName))
	}

	return tree
}
