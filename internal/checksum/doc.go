// Package checksum provides file content hashing.
//
// pathkit uses it to verify copies: the source is hashed while it streams to
// the destination, then the destination is re-read and hashed again.
//
// # Example Usage
//
//	calculator := checksum.New()
//	digest, err := calculator.CalculateReader(file)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
