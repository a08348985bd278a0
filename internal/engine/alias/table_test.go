package alias_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/engine/alias"
)

func TestTable_ReplaceAndLookup(t *testing.T) {
	table := alias.NewTable()
	assert.Equal(t, 0, table.Len())

	table.Replace(domain.NewAttributes("alias1", "/js/one", "alias2", "two"))

	v, ok := table.Lookup("alias1")
	assert.True(t, ok)
	assert.Equal(t, "/js/one", v)
	assert.Equal(t, 2, table.Len())

	table.Replace(domain.NewAttributes("alias3", "three"))
	_, ok = table.Lookup("alias1")
	assert.False(t, ok, "replace swaps the whole map")
	assert.Equal(t, map[string]string{"alias3": "three"}, table.Snapshot())

	table.Clear()
	assert.Equal(t, 0, table.Len())
}

func TestTable_SnapshotIsCopy(t *testing.T) {
	table := alias.NewTable()
	table.Replace(domain.NewAttributes("a", "1"))

	snap := table.Snapshot()
	snap["a"] = "changed"

	v, _ := table.Lookup("a")
	assert.Equal(t, "1", v)
}

func TestTable_ConcurrentReplace(t *testing.T) {
	table := alias.NewTable()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 100 {
				table.Replace(domain.NewAttributes("k", "v"))
				_, _ = table.Lookup("k")
				_ = table.Len()
			}
		})
	}
	wg.Wait()

	v, ok := table.Lookup("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
