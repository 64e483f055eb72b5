// Package regions supplies region tokens to the extraction loop, either
// from trailing command-line arguments or streamed from a region-list
// file (one token per line).
package regions
