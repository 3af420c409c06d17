// Package file provides a TOML-backed configuration store kept in the
// user's readmegen config directory.
package file
