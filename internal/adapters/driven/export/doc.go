// Package export writes generated documents to their destinations: files
// on disk, an HTML rendering, or the system clipboard.
package export
