// Package writers owns the run's output plumbing: opening and validating
// the destination, buffering, and end-of-run flushing.
package writers
