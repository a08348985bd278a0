package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webasset/internal/core/domain"
)

func TestAssetConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.AssetConfig
		wantErr bool
	}{
		{name: "global without ids", cfg: domain.AssetConfig{Global: true}},
		{name: "bound config", cfg: domain.AssetConfig{IDs: []string{"home"}}},
		{name: "missing ids", cfg: domain.AssetConfig{Source: "bad.waf"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrMissingIDs.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAssetConfig_BindingIDs(t *testing.T) {
	global := domain.AssetConfig{Global: true, IDs: []string{"ignored"}}
	assert.Equal(t, []string{domain.GlobalID}, global.BindingIDs())

	bound := domain.AssetConfig{IDs: []string{"a", "b"}}
	assert.Equal(t, []string{"a", "b"}, bound.BindingIDs())
}

func TestCacheEntry_Fresh(t *testing.T) {
	e := domain.CacheEntry{SourceModTime: 42, CachedPath: "js/app.cache.0123456789abcdef.js"}

	assert.True(t, e.Fresh(42))
	assert.False(t, e.Fresh(43))
	assert.False(t, domain.CacheEntry{}.Fresh(0))
}

func TestCacheName(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		checksum string
		want     string
	}{
		{name: "script", file: "global1.js", checksum: "00ff", want: "global1.cache.00ff.js"},
		{name: "minified", file: "app.min.css", checksum: "abcd", want: "app.min.cache.abcd.css"},
		{name: "no extension", file: "LICENSE", checksum: "1234", want: "LICENSE.cache.1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CacheName(tt.file, tt.checksum)
			assert.Equal(t, tt.want, got)
			assert.True(t, domain.IsCacheFile(got))
		})
	}
	assert.False(t, domain.IsCacheFile("global1.js"))
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, domain.DefaultCacheDirName, s.CacheDirectory)
	assert.Equal(t, domain.DefaultConfigSuffix, s.ConfigSuffix)
	assert.Equal(t, domain.DefaultReloadInterval, s.ReloadInterval)
	assert.True(t, s.ClearCacheOnStartup)
	assert.True(t, s.ClearCacheOnShutdown)
	assert.True(t, s.RemoveTempResources)
	assert.False(t, s.Caching)
	assert.False(t, s.OverwriteCacheOnFirstRun)
	assert.Equal(t, []string{"/WEB-INF/static", "/WEB-INF"}, s.AssetPrefixes)
	assert.Equal(t, []string{"jsmin"}, s.Filters[domain.FilterTypeJavascript])
}
