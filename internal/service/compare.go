package service

import (
	"fmt"
	"log"

	"ospfwatch/internal/domain"
)

// CompareService validates observed state against expected parameters.
// It emits one result per check performed and never short-circuits: a
// mismatch is recorded and the walk continues with the next entry.
type CompareService struct {
	results *domain.Collector
}

// NewCompareService creates a compare service reporting into the given
// collector.
func NewCompareService(results *domain.Collector) *CompareService {
	return &CompareService{results: results}
}

// Compare walks the expected tree against the observed tree. The
// expected tree is authoritative: observed devices, interfaces or
// neighbors with no expected counterpart are never flagged.
//
// A missing device or interface fails once and its subtree is skipped,
// so a single outage does not flood the report with neighbor-level
// failures. Attribute values are compared by exact string equality; an
// empty value is a legitimate value, not absence.
func (s *CompareService) Compare(observed, expected *domain.FactTree, check domain.Check) {
	log.Printf("Validating current state of devices against expected parameters")

	for _, deviceName := range expected.Devices() {
		expectedDevice, _ := expected.Device(deviceName)

		observedDevice, ok := observed.Device(deviceName)
		if !ok {
			s.results.Add(domain.StatusFailed,
				fmt.Sprintf("Expected device %s not found in current state", deviceName))
			continue
		}
		s.results.Add(domain.StatusPassed,
			fmt.Sprintf("Found expected device %s in current state", deviceName))

		for _, ifName := range expectedDevice.Interfaces() {
			expectedIface, _ := expectedDevice.Interface(ifName)

			observedIface, ok := observedDevice.Interface(ifName)
			if !ok {
				s.results.Add(domain.StatusFailed,
					fmt.Sprintf("Interface %s not found in current state for device %s",
						ifName, deviceName))
				continue
			}
			s.results.Add(domain.StatusPassed,
				fmt.Sprintf("Found expected interface %s", ifName))

			// A hand-edited expected tree may omit the neighbors key, or
			// leave an interface entry null; both read as zero expected
			// neighbors rather than killing the walk.
			var expectedNeighbors, observedNeighbors *domain.NeighborSet
			if expectedIface != nil {
				expectedNeighbors = expectedIface.Neighbors
			}
			if observedIface != nil {
				observedNeighbors = observedIface.Neighbors
			}

			// Informational only: a count mismatch alone is not a failure,
			// only per-neighbor mismatches are.
			s.results.Add(domain.StatusInfo,
				fmt.Sprintf("Found %d neighbors, expecting %d",
					observedNeighbors.Len(), expectedNeighbors.Len()))

			for _, neighborID := range expectedNeighbors.IDs() {
				expectedAttrs, _ := expectedNeighbors.Get(neighborID)

				observedAttrs, ok := observedNeighbors.Get(neighborID)
				if !ok {
					s.results.Add(domain.StatusFailed,
						fmt.Sprintf("Neighbor %s on interface %s not found in current state for device %s",
							neighborID, ifName, deviceName))
					continue
				}

				for _, key := range check.Attributes {
					currentValue := observedAttrs[key]
					expectedValue := expectedAttrs[key]

					if currentValue != expectedValue {
						s.results.Add(domain.StatusFailed,
							fmt.Sprintf("The current %s of neighbor %s on interface %s of device %s is %q, "+
								"which does not match the expected %s of this neighbor which is %q",
								key, neighborID, ifName, deviceName, currentValue, key, expectedValue))
					} else {
						s.results.Add(domain.StatusPassed,
							fmt.Sprintf("Neighbor %s on interface %s of device %s has the expected %s %q",
								neighborID, ifName, deviceName, key, currentValue))
					}
				}
			}
		}
	}
}
