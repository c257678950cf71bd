package pagination

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSlice_TwelveItemsFivePerPage(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	p := New(len(items), 5)
	assert.Equal(t, 3, p.TotalPages())

	want := [][]int{{1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}, {11, 12}}
	for page, w := range want {
		assert.True(t, p.SetPage(page+1))
		assert.Equal(t, w, Slice(items, p))
	}
}

func TestSetPage_OutOfRangeIgnored(t *testing.T) {
	p := New(12, 5)
	assert.True(t, p.SetPage(2))
	assert.False(t, p.SetPage(0))
	assert.False(t, p.SetPage(4))
	assert.False(t, p.SetPage(-1))
	assert.Equal(t, 2, p.Current)

	empty := New(0, 5)
	assert.Equal(t, 0, empty.TotalPages())
	assert.False(t, empty.SetPage(1))
	assert.Empty(t, Slice([]int{}, empty))
}

func TestClamp(t *testing.T) {
	p := New(11, 5)
	p.SetPage(3)
	p.TotalItems = 10
	p.Clamp()
	assert.Equal(t, 2, p.Current)

	p.TotalItems = 0
	p.Clamp()
	assert.Equal(t, 1, p.Current)
}

func labels(t *testing.T, total, current int) string {
	t.Helper()
	p := Pager{TotalItems: total, PerPage: 1, Current: current}
	out := ""
	for i, l := range p.Labels() {
		if i > 0 {
			out += " "
		}
		out += l.String()
	}
	return out
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    string
	}{
		{"no pages", 0, 1, ""},
		{"five pages shown in full", 5, 3, "1 2 3 4 5"},
		{"middle window", 10, 5, "1 ... 4 5 6 ... 10"},
		{"first page", 10, 1, "1 2 3 ... 10"},
		{"second page", 10, 2, "1 2 3 ... 10"},
		{"third page", 10, 3, "1 ... 2 3 4 ... 10"},
		{"second to last", 10, 9, "1 ... 8 9 10"},
		{"last page", 10, 10, "1 ... 8 9 10"},
		{"six pages middle", 6, 4, "1 ... 3 4 5 ... 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, labels(t, tt.total, tt.current)); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabels_Values(t *testing.T) {
	p := Pager{TotalItems: 10, PerPage: 1, Current: 5}
	want := []Label{{Page: 1}, Ellipsis, {Page: 4}, {Page: 5}, {Page: 6}, Ellipsis, {Page: 10}}
	assert.Equal(t, want, p.Labels())
}
