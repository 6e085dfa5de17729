package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
)

func TestMeasure(t *testing.T) {
	assert.Equal(t, geom.Sz(5, 1), Measure("hello"))
	assert.Equal(t, geom.Sz(6, 2), Measure("hi\nthere!"))
	assert.Equal(t, geom.Sz(4, 1), Measure("\x1b[31mtext\x1b[0m"), "escapes have no width")
	assert.Equal(t, geom.Sz(4, 1), Measure("日本"), "wide runes take two cells")
	assert.Equal(t, geom.Sz(35, 13), Face7x13.Measure("hello"))
}

func TestNewCarriesPaint(t *testing.T) {
	n := New("tip", 0xffcc00)
	assert.Equal(t, NodeName, n.Name)
	assert.Equal(t, geom.Sz(3, 1), n.Size())
	assert.Equal(t, paint.Text{Content: "tip", Color: 0xffcc00}, n.Paint)
}

func TestTruncateSingleLine(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"zero width", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, Truncate(tt.in, tt.width, TruncateOptions{}))
		})
	}
}

func TestTruncateDroppedLinesForceMarker(t *testing.T) {
	got := Truncate("one\ntwo", 10, TruncateOptions{})
	assert.Equal(t, []string{"one..."}, got)

	got = Truncate("abcdefgh\ntwo", 10, TruncateOptions{Marker: "~"})
	assert.Equal(t, []string{"abcdefgh~"}, got)

	got = Truncate("abcdefghij\ntwo", 10, TruncateOptions{Marker: "~"})
	assert.Equal(t, []string{"abcdefghi~"}, got)

	got = Truncate("brown fox\njumps", 9, TruncateOptions{})
	assert.Equal(t, []string{"brown ..."}, got)

	got = Truncate("ab\ncd", 2, TruncateOptions{})
	assert.Equal(t, []string{".."}, got)
}

func TestTruncateMultiLine(t *testing.T) {
	got := Truncate("the quick brown fox jumps", 10, TruncateOptions{MaxLines: 2})
	assert.Equal(t, []string{"the quick", "brown f..."}, got)

	got = Truncate("short", 10, TruncateOptions{MaxLines: 3, CompleteLines: true})
	assert.Equal(t, []string{"short", "", ""}, got)
}

func TestTruncatedLeaf(t *testing.T) {
	n := Face7x13.Truncated("a long label here", 0xffffff, 70, TruncateOptions{})
	assert.Equal(t, geom.Sz(70, 13), n.Size())
	assert.Equal(t, "a long ...", n.Paint.(paint.Text).Content)
}
