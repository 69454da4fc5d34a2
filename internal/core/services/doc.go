// Package services implements the driving ports on top of the domain
// engine and the driven ports.
package services
