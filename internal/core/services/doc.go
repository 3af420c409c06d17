// Package services implements the core business logic behind the driving
// ports: the repository profiler (capability detection) and the document
// generator (the ordered section pipeline).
package services
