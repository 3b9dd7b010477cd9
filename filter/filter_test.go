package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `ext == "tif"`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `name startsWith "unclosed`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `depth + 1`,
			wantErr:    true,
		},
		{
			name:       "unknown field",
			expression: `size > 10`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasExt(name, "tif", "jp2") and depth == 0 and not (base startsWith "tmp")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestCompileReusesPrograms(t *testing.T) {
	first, err := Compile(`ext == "xml"`)
	require.NoError(t, err)

	second, err := Compile(` ext == "xml" `)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestNewFile(t *testing.T) {
	assert.Equal(t, File{Name: "00001.jp2", Base: "00001.jp2", Ext: "jp2"}, NewFile("00001.jp2"))
	assert.Equal(t, File{
		Name:  "images/sub/page 1.TIF",
		Base:  "page 1.TIF",
		Dir:   "images/sub",
		Ext:   "tif",
		Depth: 2,
	}, NewFile("images/sub/page 1.TIF"))
}

func TestApply(t *testing.T) {
	files := []string{"00001.html", "00001.jp2", "images/00002.JP2", "images/00002.tif", "README"}

	tests := []struct {
		expression string
		expected   []string
	}{
		{`ext == "jp2"`, []string{"00001.jp2", "images/00002.JP2"}},
		{`hasExt(name, ".html", "tif")`, []string{"00001.html", "images/00002.tif"}},
		{`dir == "images"`, []string{"images/00002.JP2", "images/00002.tif"}},
		{`glob(name, "*.*")`, []string{"00001.html", "00001.jp2"}},
		{`ext == ""`, []string{"README"}},
		{`depth > 3`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(files)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
		})
	}
}

func TestMatchEvaluationError(t *testing.T) {
	f, err := Compile(`glob(name, "[")`)
	require.NoError(t, err)

	_, err = f.Match("a")
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "a", evalErr.Filename)
}

func TestLRUCacheEviction(t *testing.T) {
	c := newLRUCache(2)
	a, b, d := &Filter{expr: "a"}, &Filter{expr: "b"}, &Filter{expr: "d"}

	c.Put("a", a)
	c.Put("b", b)
	_, _ = c.Get("a")
	c.Put("d", d)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Same(t, a, got)
}
