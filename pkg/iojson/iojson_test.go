package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type garment struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
}

func TestWriteWith(t *testing.T) {
	t.Run("indented and unescaped", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteWith(&out, &errOut, []garment{{ID: "a", Brand: "H&M"}}))

		assert.Contains(t, out.String(), `"brand": "H&M"`)
		assert.Contains(t, out.String(), "\n  {")
		assert.Empty(t, errOut.String())
	})

	t.Run("encode failure goes to the error stream", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)}))

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), `"message":"failed to encode output"`)
		assert.Contains(t, errOut.String(), "json_error")
	})
}

func TestListReader_Read(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []garment
		err   string
	}{
		{
			name:  "array",
			input: `[{"id":"a","brand":"Uniqlo"},{"id":"b"}]`,
			want:  []garment{{ID: "a", Brand: "Uniqlo"}, {ID: "b"}},
		},
		{
			name:  "json lines",
			input: "{\"id\":\"a\"}\n{\"id\":\"b\",\"brand\":\"COS\"}\n",
			want:  []garment{{ID: "a"}, {ID: "b", Brand: "COS"}},
		},
		{name: "empty", input: "  \n", err: "no input provided"},
		{name: "broken line", input: "{\"id\":\"a\"}\n{\"id\":", err: "decode JSON value 2"},
		{name: "broken array", input: `[{"id":1}]`, err: "decode JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r ListReader[garment]
			got, err := r.Read(strings.NewReader(tt.input))
			if tt.err != "" {
				require.ErrorContains(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("file flag wins over stdin", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":"from-file"}]`), 0o644))

		r := ListReader[garment]{path: path}
		got, err := r.Read(strings.NewReader(`[{"id":"from-stdin"}]`))
		require.NoError(t, err)
		assert.Equal(t, []garment{{ID: "from-file"}}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		r := ListReader[garment]{path: filepath.Join(t.TempDir(), "nope.json")}
		_, err := r.Read(nil)
		require.ErrorContains(t, err, "open file")
	})
}
