package adapter

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// Device identifies one target device and how to reach it.
type Device struct {
	Name     string
	Host     string
	Port     int
	Username string
	Password string
}

// SSHProbeConfig holds configuration for the SSH probe.
type SSHProbeConfig struct {
	// ConnectionTimeout for SSH connections
	ConnectionTimeout time.Duration
	// CommandTimeout for command execution
	CommandTimeout time.Duration
	// MaxConcurrent limits parallel SSH sessions
	MaxConcurrent int
}

// DefaultSSHProbeConfig returns sensible defaults
func DefaultSSHProbeConfig() SSHProbeConfig {
	return SSHProbeConfig{
		ConnectionTimeout: 10 * time.Second,
		CommandTimeout:    30 * time.Second,
		MaxConcurrent:     5,
	}
}

// SSHProbe executes CLI commands on devices over SSH and parses the
// output into structured facts. Devices that cannot be reached or
// authenticated are simply absent from the Execute result.
type SSHProbe struct {
	devices map[string]Device
	config  SSHProbeConfig
	parser  func(output string) *ProbeData
}

// NewSSHProbe creates an SSH probe for the given devices. The parser
// converts raw command output into structured data; it defaults to the
// IOS-XE OSPF neighbor parser.
func NewSSHProbe(devices []Device, config SSHProbeConfig) *SSHProbe {
	if config.ConnectionTimeout == 0 {
		config.ConnectionTimeout = 10 * time.Second
	}
	if config.CommandTimeout == 0 {
		config.CommandTimeout = 30 * time.Second
	}
	if config.MaxConcurrent == 0 {
		config.MaxConcurrent = 5
	}

	byName := make(map[string]Device, len(devices))
	for _, d := range devices {
		byName[d.Name] = d
	}

	return &SSHProbe{
		devices: byName,
		config:  config,
		parser:  ParseOSPFNeighbors,
	}
}

// Execute runs the command on every target concurrently, bounded by
// MaxConcurrent. Per-device failures are logged and leave the device
// out of the returned map.
func (s *SSHProbe) Execute(ctx context.Context, command string, targets []string) map[string]*ProbeResult {
	results := make(map[string]*ProbeResult, len(targets))
	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, s.config.MaxConcurrent)
	for _, name := range targets {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := s.probeDevice(ctx, name, command)
			if err != nil {
				log.Printf("SSH probe: %s: %v", name, err)
				return
			}

			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	return results
}

// probeDevice connects to a single device, runs the command and parses
// the output.
func (s *SSHProbe) probeDevice(ctx context.Context, name, command string) (*ProbeResult, error) {
	device, ok := s.devices[name]
	if !ok {
		return nil, fmt.Errorf("no connection details configured for device %s", name)
	}

	client, err := s.connect(ctx, device)
	if err != nil {
		return nil, fmt.Errorf("connect failed: %w", err)
	}
	defer client.Close()

	output, err := s.runCommand(ctx, client, command)
	if err != nil {
		return nil, fmt.Errorf("command %q failed: %w", command, err)
	}

	return &ProbeResult{
		DeviceName: name,
		Command:    command,
		Output:     output,
		Data:       s.parser(output),
	}, nil
}

// connect establishes an SSH connection with password authentication.
func (s *SSHProbe) connect(ctx context.Context, device Device) (*ssh.Client, error) {
	port := device.Port
	if port == 0 {
		port = 22
	}
	addr := fmt.Sprintf("%s:%d", device.Host, port)

	config := &ssh.ClientConfig{
		User: device.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(device.Password),
		},
		// Network devices rotate host keys on reimage; pinning them here
		// would make every lab rebuild a hard failure.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         s.config.ConnectionTimeout,
	}

	dialer := &net.Dialer{Timeout: s.config.ConnectionTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %w", err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to establish SSH connection: %w", err)
	}

	return ssh.NewClient(sshConn, chans, reqs), nil
}

// runCommand executes a single command in its own session, bounded by
// the command timeout.
func (s *SSHProbe) runCommand(ctx context.Context, client *ssh.Client, command string) (string, error) {
	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	type cmdResult struct {
		output []byte
		err    error
	}
	done := make(chan cmdResult, 1)
	go func() {
		output, err := session.CombinedOutput(command)
		done <- cmdResult{output, err}
	}()

	timer := time.NewTimer(s.config.CommandTimeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		return string(res.output), nil
	case <-timer.C:
		return "", fmt.Errorf("timed out after %s", s.config.CommandTimeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
