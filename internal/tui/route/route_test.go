package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilders(t *testing.T) {
	assert.Equal(t, "/closet/abc", Detail("abc"))
	assert.Equal(t, "/closet/abc/edit", Edit("abc"))
	assert.Equal(t, "/closet/a%2Fb", Detail("a/b"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/closet", Route{Kind: KindList}},
		{"/closet/", Route{Kind: KindList}},
		{"/closet/abc", Route{Kind: KindDetail, ID: "abc"}},
		{"/closet/abc/edit", Route{Kind: KindEdit, ID: "abc"}},
		{"/closet/a%2Fb", Route{Kind: KindDetail, ID: "a/b"}},
		{"/closet/abc/other", Route{}},
		{"/closets", Route{}},
		{"/", Route{}},
		{"", Route{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.path))
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, id := range []string{"abc", "a b", "한글", "x/y"} {
		assert.Equal(t, Route{Kind: KindDetail, ID: id}, Parse(Detail(id)))
		assert.Equal(t, Route{Kind: KindEdit, ID: id}, Parse(Edit(id)))
	}
}
