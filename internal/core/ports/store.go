package ports

// CacheStore defines the on-disk layout of the asset cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Root returns the absolute cache directory.
	Root() string

	// Ensure creates the cache directory if it does not exist.
	Ensure() error

	// Put writes data at the cache-relative path rel, creating parent directories.
	// It returns false when an existing file was kept instead.
	Put(rel string, data []byte) (bool, error)

	// Clear removes every cached file, then empty directories, then the root if empty.
	Clear() error
}
