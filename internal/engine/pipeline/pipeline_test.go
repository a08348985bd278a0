package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webasset/internal/adapters/cas"
	assetfs "go.trai.ch/webasset/internal/adapters/fs"
	"go.trai.ch/webasset/internal/adapters/metrics"
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/webasset/internal/core/ports/mocks"
	"go.trai.ch/webasset/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

type fixture struct {
	root    string
	work    string
	chains  *mocks.MockFilterChains
	logger  *mocks.MockLogger
	hasher  *assetfs.Hasher
	options pipeline.Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		root:   t.TempDir(),
		work:   t.TempDir(),
		chains: mocks.NewMockFilterChains(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		hasher: assetfs.NewHasher(),
	}
	f.options = pipeline.Options{
		Root:                f.root,
		CacheDir:            domain.DefaultCacheDirName,
		AssetPrefixes:       domain.DefaultAssetPrefixes(),
		RemoveTempResources: true,
		TempDir:             f.work,
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return f
}

func (f *fixture) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func (f *fixture) pipeline(store ports.CacheStore) *pipeline.Pipeline {
	return pipeline.New(f.options, store, f.chains, f.hasher, metrics.Noop{}, f.logger)
}

func (f *fixture) diskStore() *cas.Store {
	return cas.NewStore(filepath.Join(f.root, domain.DefaultCacheDirName), false)
}

func TestFilterAndCache_NoPath(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline(f.diskStore())

	assert.False(t, p.FilterAndCache(domain.NewAttributes(domain.AttrType, "text/javascript")))
}

func TestFilterAndCache_External(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline(f.diskStore())

	for _, url := range []string{
		"http://www.google.com/test1.js",
		"https://www.google.com/test2.js",
		"//cdn.example.com/lib.css",
		"://odd.example.com/x.js",
	} {
		attrs := domain.NewAttributes(domain.AttrPath, url)
		assert.True(t, p.FilterAndCache(attrs), url)
		assert.Equal(t, url, attrs.Value(domain.AttrPath))
		_, ok := p.CachedPath(url)
		assert.False(t, ok)
	}
	assert.Equal(t, 0, p.Entries())
}

func TestFilterAndCache_MissingFile(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline(f.diskStore())

	attrs := domain.NewAttributes(domain.AttrPath, "/js/nope.js")
	assert.False(t, p.FilterAndCache(attrs))
	assert.Equal(t, "/js/nope.js", attrs.Value(domain.AttrPath))
}

func TestFilterAndCache_WritesContentAddressedCopy(t *testing.T) {
	f := newFixture(t)
	content := "function global1() { return 1; }"
	f.write(t, "WEB-INF/static/js/global1.js", content)
	f.chains.EXPECT().Chain(domain.FilterTypeJavascript).Return(nil)
	p := f.pipeline(f.diskStore())

	attrs := domain.NewAttributes(
		domain.AttrPath, "/WEB-INF/static/js/global1.js",
		domain.AttrFilterType, domain.FilterTypeJavascript,
	)
	require.True(t, p.FilterAndCache(attrs))

	sum := f.hasher.Checksum([]byte(content))
	want := "/_webasset_cache_/js/global1.cache." + sum + ".js"
	assert.Equal(t, want, attrs.Value(domain.AttrPath))

	cached, ok := p.CachedPath("/WEB-INF/static/js/global1.js")
	assert.True(t, ok)
	assert.Equal(t, want, cached)

	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(want)))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFilterAndCache_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.write(t, "WEB-INF/js/app.js", "var app;")
	f.chains.EXPECT().Chain(gomock.Any()).Return(nil).Times(1)

	store := mocks.NewMockCacheStore(gomock.NewController(t))
	store.EXPECT().Put("js/app.cache."+f.hasher.Checksum([]byte("var app;"))+".js", []byte("var app;")).
		Return(true, nil).Times(1)
	p := f.pipeline(store)

	first := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/app.js")
	second := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/app.js")
	require.True(t, p.FilterAndCache(first))
	require.True(t, p.FilterAndCache(second))

	assert.Equal(t, first.Value(domain.AttrPath), second.Value(domain.AttrPath))
	assert.Equal(t, 1, p.Entries())
}

func TestFilterAndCache_RefiltersModifiedSource(t *testing.T) {
	f := newFixture(t)
	source := f.write(t, "WEB-INF/js/app.js", "v1")
	f.chains.EXPECT().Chain(gomock.Any()).Return(nil).Times(2)
	p := f.pipeline(f.diskStore())

	first := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/app.js")
	require.True(t, p.FilterAndCache(first))

	require.NoError(t, os.WriteFile(source, []byte("v2"), domain.FilePerm))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(source, later, later))

	second := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/app.js")
	require.True(t, p.FilterAndCache(second))

	assert.NotEqual(t, first.Value(domain.AttrPath), second.Value(domain.AttrPath))
	assert.Contains(t, second.Value(domain.AttrPath), f.hasher.Checksum([]byte("v2")))
}

func TestFilterAndCache_RunsChainInOrder(t *testing.T) {
	f := newFixture(t)
	f.write(t, "WEB-INF/static/css/site.css", "body { color: red; }")

	ctrl := gomock.NewController(t)
	first := mocks.NewMockFilter(ctrl)
	second := mocks.NewMockFilter(ctrl)
	attrs := domain.NewAttributes(
		domain.AttrPath, "/WEB-INF/static/css/site.css",
		domain.AttrFilterType, domain.FilterTypeStylesheet,
	)

	gomock.InOrder(
		first.EXPECT().FilterAsset(gomock.Any(), attrs).DoAndReturn(func(path string, _ *domain.Attributes) string {
			out := strings.TrimSuffix(path, ".css") + ".min.css"
			require.NoError(t, os.WriteFile(out, []byte("body{color:red}"), domain.FilePerm))
			return out
		}),
		second.EXPECT().FilterAsset(gomock.Any(), attrs).DoAndReturn(func(path string, _ *domain.Attributes) string {
			assert.True(t, strings.HasSuffix(path, "site.min.css"))
			return path
		}),
	)
	f.chains.EXPECT().Chain(domain.FilterTypeStylesheet).Return([]ports.Filter{first, second})
	p := f.pipeline(f.diskStore())

	require.True(t, p.FilterAndCache(attrs))

	sum := f.hasher.Checksum([]byte("body{color:red}"))
	assert.Equal(t, "/_webasset_cache_/css/site.min.cache."+sum+".css", attrs.Value(domain.AttrPath))
}

func TestFilterAndCache_PrefixStripping(t *testing.T) {
	tests := []struct {
		name  string
		asset string
		dir   string
	}{
		{name: "static prefix", asset: "/WEB-INF/static/js/a.js", dir: "/_webasset_cache_/js/"},
		{name: "web-inf prefix", asset: "/WEB-INF/js/lib/b.js", dir: "/_webasset_cache_/js/lib/"},
		{name: "no prefix", asset: "/assets/c.js", dir: "/_webasset_cache_/assets/"},
		{name: "root file", asset: "/d.js", dir: "/_webasset_cache_/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.write(t, tt.asset, "x")
			f.chains.EXPECT().Chain(gomock.Any()).Return(nil)
			p := f.pipeline(f.diskStore())

			attrs := domain.NewAttributes(domain.AttrPath, tt.asset)
			require.True(t, p.FilterAndCache(attrs))

			got := attrs.Value(domain.AttrPath)
			assert.True(t, strings.HasPrefix(got, tt.dir), got)
			assert.NotContains(t, strings.TrimPrefix(got, tt.dir), "/")
		})
	}
}

func TestFilterAndCache_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.write(t, "WEB-INF/js/app.js", "x")
	f.chains.EXPECT().Chain(gomock.Any()).Return(nil)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrFilterFailed.Error())
	})

	store := mocks.NewMockCacheStore(gomock.NewController(t))
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(false, errors.New("disk full"))
	p := f.pipeline(store)

	attrs := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/app.js")
	assert.False(t, p.FilterAndCache(attrs))
	assert.Equal(t, 0, p.Entries())
}

func TestFilterAndCache_ConcurrentSamePath(t *testing.T) {
	f := newFixture(t)
	f.write(t, "WEB-INF/js/shared.js", "shared")
	f.chains.EXPECT().Chain(gomock.Any()).Return(nil).MinTimes(1)

	store := mocks.NewMockCacheStore(gomock.NewController(t))
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
	p := f.pipeline(store)

	var wg sync.WaitGroup
	paths := make([]string, 16)
	for i := range paths {
		wg.Go(func() {
			attrs := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/shared.js")
			if p.FilterAndCache(attrs) {
				paths[i] = attrs.Value(domain.AttrPath)
			}
		})
	}
	wg.Wait()

	for _, got := range paths {
		assert.Equal(t, paths[0], got)
	}
	assert.NotEmpty(t, paths[0])
}

func TestFilterAndCache_WorkDirCleanup(t *testing.T) {
	for _, remove := range []bool{true, false} {
		f := newFixture(t)
		f.options.RemoveTempResources = remove
		f.write(t, "WEB-INF/js/app.js", "x")
		f.chains.EXPECT().Chain(gomock.Any()).Return(nil)
		p := f.pipeline(f.diskStore())

		require.True(t, p.FilterAndCache(domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/app.js")))

		entries, err := os.ReadDir(f.work)
		require.NoError(t, err)
		if remove {
			assert.Empty(t, entries)
		} else {
			require.Len(t, entries, 1)
			assert.True(t, strings.HasPrefix(entries[0].Name(), "_webasset_work_"))
		}
	}
}

func TestClearDiskAndReset(t *testing.T) {
	f := newFixture(t)
	f.write(t, "WEB-INF/js/app.js", "x")
	f.chains.EXPECT().Chain(gomock.Any()).Return(nil)
	p := f.pipeline(f.diskStore())

	require.True(t, p.FilterAndCache(domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/app.js")))
	require.NoError(t, p.ClearDisk())
	p.Reset()

	assert.Equal(t, 0, p.Entries())
	_, err := os.Stat(filepath.Join(f.root, domain.DefaultCacheDirName))
	assert.True(t, os.IsNotExist(err))
}

func TestIsExternal(t *testing.T) {
	assert.True(t, pipeline.IsExternal("http://a/b.js"))
	assert.True(t, pipeline.IsExternal("https://a/b.js"))
	assert.True(t, pipeline.IsExternal("//a/b.js"))
	assert.False(t, pipeline.IsExternal("/js/a.js"))
	assert.False(t, pipeline.IsExternal("ftp://a/b.js"))
}

func TestFilterAndCache_ContentAddressing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.StringMatching(`[a-z ;=0-9]{1,40}`).Draw(rt, "a")
		b := rapid.StringMatching(`[a-z ;=0-9]{1,40}`).Draw(rt, "b")

		f := newFixture(t)
		f.chains.EXPECT().Chain(gomock.Any()).Return(nil).Times(2)
		f.write(t, "WEB-INF/js/one.js", a)
		f.write(t, "WEB-INF/js/two.js", b)
		p := f.pipeline(f.diskStore())

		one := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/one.js")
		two := domain.NewAttributes(domain.AttrPath, "/WEB-INF/js/two.js")
		if !p.FilterAndCache(one) || !p.FilterAndCache(two) {
			rt.Fatal("filter failed")
		}

		sumOne := strings.Split(one.Value(domain.AttrPath), ".")[2]
		sumTwo := strings.Split(two.Value(domain.AttrPath), ".")[2]
		if (a == b) != (sumOne == sumTwo) {
			rt.Fatalf("checksums %s/%s for contents %q/%q", sumOne, sumTwo, a, b)
		}
	})
}
