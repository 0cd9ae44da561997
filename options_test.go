package svgo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NestorMonroy/svgo"
)

func TestDefaultOptions(t *testing.T) {
	opts := svgo.DefaultOptions()
	assert.True(t, opts.UnknownContent)
	assert.True(t, opts.UnknownAttrs)
	assert.True(t, opts.DefaultAttrs)
	assert.True(t, opts.UselessOverrides)
	assert.True(t, opts.KeepDataAttrs)
	assert.True(t, opts.KeepAriaAttrs)
	assert.False(t, opts.KeepRoleAttr)
}

func TestLoadOptions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want func(*svgo.Options)
	}{
		{name: "empty keeps defaults", src: "", want: func(*svgo.Options) {}},
		{
			name: "partial overrides",
			src:  "keepRoleAttr: true\nunknownContent: false\n",
			want: func(o *svgo.Options) {
				o.KeepRoleAttr = true
				o.UnknownContent = false
			},
		},
		{
			name: "all disabled",
			src: `unknownContent: false
unknownAttrs: false
defaultAttrs: false
uselessOverrides: false
keepDataAttrs: false
keepAriaAttrs: false
`,
			want: func(o *svgo.Options) { *o = svgo.Options{} },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := svgo.DefaultOptions()
			tt.want(&want)

			got, err := svgo.LoadOptions(strings.NewReader(tt.src))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadOptionsRejectsUnknownFields(t *testing.T) {
	_, err := svgo.LoadOptions(strings.NewReader("keepClassAttr: true\n"))
	require.ErrorContains(t, err, "decode options")
}

func TestLoadOptionsNilReader(t *testing.T) {
	got, err := svgo.LoadOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, svgo.DefaultOptions(), got)
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultAttrs: false\n"), 0o600))

	got, err := svgo.LoadOptionsFile(path)
	require.NoError(t, err)
	assert.False(t, got.DefaultAttrs)
	assert.True(t, got.UnknownAttrs)

	_, err = svgo.LoadOptionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "open options file")
}

func TestOptionsSetters(t *testing.T) {
	base := svgo.DefaultOptions()
	opts := base.WithKeepRoleAttr(true).WithUnknownContent(false).WithKeepDataAttrs(false)

	assert.True(t, opts.KeepRoleAttr)
	assert.False(t, opts.UnknownContent)
	assert.False(t, opts.KeepDataAttrs)
	assert.Equal(t, svgo.DefaultOptions(), base, "setters must not modify the receiver")

	none := svgo.Options{}.
		WithUnknownAttrs(true).
		WithDefaultAttrs(true).
		WithUselessOverrides(true).
		WithKeepAriaAttrs(true)
	assert.Equal(t, svgo.Options{UnknownAttrs: true, DefaultAttrs: true, UselessOverrides: true, KeepAriaAttrs: true}, none)
}
