package adapter

import (
	"context"
	"fmt"
	"log"
	"time"

	nmap "github.com/Ullaakut/nmap/v3"
)

// ReachabilityScanner checks that target devices answer on their SSH
// port before any probing starts, so connectivity problems surface as
// one clear failure per device instead of a timeout mid-run.
type ReachabilityScanner struct {
	port    string
	timeout time.Duration
}

// NewReachabilityScanner creates a scanner for the given SSH port.
func NewReachabilityScanner(port int, timeout time.Duration) *ReachabilityScanner {
	if port == 0 {
		port = 22
	}
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &ReachabilityScanner{
		port:    fmt.Sprintf("%d", port),
		timeout: timeout,
	}
}

// Scan probes the SSH port on every host and reports which hosts have
// it open. Hosts that are down or filtered report false.
func (r *ReachabilityScanner) Scan(ctx context.Context, hosts []string) (map[string]bool, error) {
	if len(hosts) == 0 {
		return map[string]bool{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	scanner, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(hosts...),
		nmap.WithPorts(r.port),
		nmap.WithConnectScan(),
		nmap.WithSkipHostDiscovery(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scanner: %w", err)
	}

	log.Printf("Reachability: scanning %d hosts on port %s", len(hosts), r.port)
	result, warnings, err := scanner.Run()
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if warnings != nil && len(*warnings) > 0 {
		log.Printf("Reachability: warnings: %v", *warnings)
	}

	reachable := make(map[string]bool, len(hosts))
	for _, host := range result.Hosts {
		if len(host.Addresses) == 0 {
			continue
		}
		open := false
		if host.Status.State == "up" {
			for _, port := range host.Ports {
				if port.State.State == "open" {
					open = true
					break
				}
			}
		}
		for _, addr := range host.Addresses {
			reachable[addr.Addr] = open
		}
		for _, hostname := range host.Hostnames {
			reachable[hostname.Name] = open
		}
	}

	return reachable, nil
}
