package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/webasset/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash checksums of asset content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Checksum returns the XXHash of data as 16 lowercase hex digits.
func (h *Hasher) Checksum(data []byte) string {
	return format(xxhash.Sum64(data))
}

func format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
