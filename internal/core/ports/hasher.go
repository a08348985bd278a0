package ports

// Hasher computes content checksums for cached assets.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Checksum returns a fixed-width lowercase hex digest of data.
	Checksum(data []byte) string
}
