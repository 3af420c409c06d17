// Package cli implements the cobra command tree. Commands talk to the core
// exclusively through the driving ports; wiring happens in main.
package cli
