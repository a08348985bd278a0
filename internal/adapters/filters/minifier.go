// Package filters provides the asset filters and their registry.
package filters

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	mediaJavascript = "application/javascript"
	mediaStylesheet = "text/css"
)

var _ ports.Filter = (*Minifier)(nil)

// Minifier minifies scripts or stylesheets into a sibling <base>.min.<ext> file.
type Minifier struct {
	mediaType string
	ext       string
	m         *minify.M
	logger    ports.Logger
}

// NewJSMinifier creates a filter minifying JavaScript.
func NewJSMinifier(logger ports.Logger) *Minifier {
	m := minify.New()
	m.AddFunc(mediaJavascript, js.Minify)
	return &Minifier{mediaType: mediaJavascript, ext: ".js", m: m, logger: logger}
}

// NewCSSMinifier creates a filter minifying stylesheets.
func NewCSSMinifier(logger ports.Logger) *Minifier {
	m := minify.New()
	m.AddFunc(mediaStylesheet, css.Minify)
	return &Minifier{mediaType: mediaStylesheet, ext: ".css", m: m, logger: logger}
}

// FilterAsset minifies the file at path. Files that are already minified are
// returned as is, as is the input when minification fails.
func (f *Minifier) FilterAsset(path string, _ *domain.Attributes) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if alreadyMinified(base) {
		return path
	}

	output := filepath.Join(filepath.Dir(path), base+".min"+f.ext)
	if err := f.minify(path, output); err != nil {
		f.logger.Error(err)
		return path
	}
	return output
}

func (f *Minifier) minify(input, output string) error {
	in, err := os.Open(input) //nolint:gosec // Path is a working copy owned by the pipeline
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open asset for minification"), "path", input)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	//nolint:gosec // Path is a working copy owned by the pipeline
	out, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create minified asset"), "path", output)
	}

	if err := f.m.Minify(f.mediaType, out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(output)
		return zerr.With(zerr.Wrap(err, "failed to minify asset"), "path", input)
	}
	return out.Close()
}

// alreadyMinified reports whether a base name carries a "min" segment,
// as in app.min or jquery-3.7-min.
func alreadyMinified(base string) bool {
	parts := strings.FieldsFunc(strings.ToLower(base), func(r rune) bool {
		return r == '.' || r == '-'
	})
	return slices.Contains(parts, "min")
}
