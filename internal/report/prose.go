package report

import "ospfwatch/internal/domain"

// Prose holds the fixed report sections for one check. Each section is
// an html/template body rendered against the expected parameter view.
type Prose struct {
	Description      string
	Setup            string
	Procedure        string
	PassFailCriteria string
}

// proseForCheck returns the report prose for a check name.
func proseForCheck(name string) (Prose, bool) {
	switch name {
	case domain.CheckNeighborAddress.Name:
		return addressProse, true
	case domain.CheckNeighborState.Name:
		return stateProse, true
	}
	return Prose{}, false
}

var addressProse = Prose{
	Description: `<p>The purpose of this test case is to validate the IP addresses of
IPv4 OSPF neighbors on one or more IOS-XE devices.
{{if .Devices}}The test will verify OSPF neighbor IP addresses on the following devices:
{{range $i, $d := .Devices}}{{if $i}}, {{end}}{{$d.Name}}{{end}}.{{end}}
This verification ensures that each OSPF neighbor relationship is established with the
expected IP address, which is critical for proper network operation.</p>
<p>OSPF (Open Shortest Path First) is a link-state routing protocol that uses neighbor
IP addresses to establish and maintain neighbor relationships. Incorrect or unexpected
IP addresses could indicate configuration errors, network topology changes, or
potential security issues such as spoofing attacks.</p>`,

	Setup: `<p><strong>Test Setup:</strong></p>
<ul>
<li>All devices are connected as per the network topology.</li>
<li>All devices are powered up and operational.</li>
<li>SSH connectivity to the devices is established.</li>
<li>Authentication against the devices is successful.</li>
</ul>
<p><strong>Devices Under Test:</strong></p>
{{if .Devices}}
<ul>
{{range .Devices}}<li>{{.Name}}</li>
{{end}}</ul>
{{else}}
<p>All devices in the target set</p>
{{end}}
<p><strong>OSPF Neighbor IP Addresses to Verify:</strong></p>
<ul>
{{range .Devices}}<li>Device: {{.Name}}
<ul>
{{range .Interfaces}}<li>Interface: {{.Name}}
<ul>
{{range .Neighbors}}<li>Neighbor Router ID: {{.ID}}{{range .Attributes}}, expected {{.Key}}: {{.Value}}{{end}}</li>
{{end}}</ul>
</li>
{{end}}</ul>
</li>
{{end}}</ul>`,

	Procedure: `<p><strong>Test Procedure:</strong></p>
<ol>
<li>Establish connections to all target devices</li>
<li>Verify device connectivity to ensure all devices are accessible</li>
<li>Execute 'show ip ospf neighbor' command on each device</li>
<li>Parse the command output to extract interface names, neighbor router IDs and
neighbor IP addresses</li>
<li>For each device, compare the current OSPF neighbor IP addresses against the
expected parameters</li>
<li>Record pass/fail results for each verification point</li>
<li>Generate a comprehensive report of the verification results</li>
</ol>`,

	PassFailCriteria: `<p><strong>Pass/Fail Criteria:</strong></p>
<p><strong>This test passes when all of the following conditions are met:</strong></p>
<ol>
<li>SSH connectivity to each device is successful</li>
<li>Authentication against each device is successful</li>
<li>All expected OSPF interfaces are present on each device</li>
<li>All expected OSPF neighbors are present on each interface</li>
<li>Each OSPF neighbor has the correct IP address</li>
</ol>
<p><strong>Specific Verification Points:</strong></p>
<ul>
{{range .Devices}}<li>Device {{.Name}}:
<ul>
{{range .Interfaces}}<li>Interface {{.Name}} must be present and running OSPF
<ul>
{{range .Neighbors}}<li>Neighbor {{.ID}} must be present{{range .Attributes}} with {{.Key}} &quot;{{.Value}}&quot;{{end}}</li>
{{end}}</ul>
</li>
{{end}}</ul>
</li>
{{end}}</ul>`,
}

var stateProse = Prose{
	Description: `<p>The purpose of this test case is to validate the adjacency state of
IPv4 OSPF neighbors on one or more IOS-XE devices.
{{if .Devices}}The test will verify OSPF neighbor states on the following devices:
{{range $i, $d := .Devices}}{{if $i}}, {{end}}{{$d.Name}}{{end}}.{{end}}
This verification ensures that each OSPF neighbor relationship has converged to the
expected state (e.g. FULL/DR, FULL/BDR), which is critical for proper route exchange.</p>
<p>An OSPF neighbor stuck in INIT, 2WAY or EXSTART can indicate MTU mismatches,
authentication problems, or unidirectional connectivity.</p>`,

	Setup: `<p><strong>Test Setup:</strong></p>
<ul>
<li>All devices are connected as per the network topology.</li>
<li>All devices are powered up and operational.</li>
<li>SSH connectivity to the devices is established.</li>
<li>Authentication against the devices is successful.</li>
</ul>
<p><strong>OSPF Neighbor States to Verify:</strong></p>
<ul>
{{range .Devices}}<li>Device: {{.Name}}
<ul>
{{range .Interfaces}}<li>Interface: {{.Name}}
<ul>
{{range .Neighbors}}<li>Neighbor Router ID: {{.ID}}{{range .Attributes}}, expected {{.Key}}: {{.Value}}{{end}}</li>
{{end}}</ul>
</li>
{{end}}</ul>
</li>
{{end}}</ul>`,

	Procedure: `<p><strong>Test Procedure:</strong></p>
<ol>
<li>Establish connections to all target devices</li>
<li>Verify device connectivity to ensure all devices are accessible</li>
<li>Execute 'show ip ospf neighbor' command on each device</li>
<li>Parse the command output to extract interface names, neighbor router IDs and
neighbor adjacency states</li>
<li>For each device, compare the current OSPF neighbor states against the
expected parameters</li>
<li>Record pass/fail results for each verification point</li>
<li>Generate a comprehensive report of the verification results</li>
</ol>`,

	PassFailCriteria: `<p><strong>Pass/Fail Criteria:</strong></p>
<p><strong>This test passes when all of the following conditions are met:</strong></p>
<ol>
<li>SSH connectivity to each device is successful</li>
<li>Authentication against each device is successful</li>
<li>All expected OSPF interfaces are present on each device</li>
<li>All expected OSPF neighbors are present on each interface</li>
<li>Each OSPF neighbor is in the expected state (e.g. FULL/DR, FULL/BDR)</li>
</ol>
<p><strong>Specific Verification Points:</strong></p>
<ul>
{{range .Devices}}<li>Device {{.Name}}:
<ul>
{{range .Interfaces}}<li>Interface {{.Name}} must be present and running OSPF
<ul>
{{range .Neighbors}}<li>Neighbor {{.ID}} must be present{{range .Attributes}} in state &quot;{{.Value}}&quot;{{end}}</li>
{{end}}</ul>
</li>
{{end}}</ul>
</li>
{{end}}</ul>`,
}
