// Package pagination splits the client's already sorted entry list into
// pages and builds the page-number labels shown under the list.
package pagination

import "strconv"

// Pager is a page position over TotalItems items. Current is 1-based.
type Pager struct {
	TotalItems int
	PerPage    int
	Current    int
}

func New(total, perPage int) Pager {
	return Pager{TotalItems: total, PerPage: perPage, Current: 1}
}

// TotalPages is ceil(TotalItems / PerPage).
func (p Pager) TotalPages() int {
	if p.PerPage <= 0 || p.TotalItems <= 0 {
		return 0
	}
	return (p.TotalItems + p.PerPage - 1) / p.PerPage
}

// SetPage moves to page n. Pages outside [1, TotalPages] are ignored and
// false is returned.
func (p *Pager) SetPage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.Current = n
	return true
}

// Clamp pulls Current back into range after TotalItems changed.
func (p *Pager) Clamp() {
	if total := p.TotalPages(); p.Current > total {
		p.Current = total
	}
	if p.Current < 1 {
		p.Current = 1
	}
}

// Window returns the half-open index range of the current page.
func (p Pager) Window() (int, int) {
	if p.PerPage <= 0 || p.Current < 1 {
		return 0, 0
	}
	start := (p.Current - 1) * p.PerPage
	end := start + p.PerPage
	if start > p.TotalItems {
		start = p.TotalItems
	}
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return start, end
}

// Slice returns the items of the current page.
func Slice[T any](items []T, p Pager) []T {
	p.TotalItems = len(items)
	start, end := p.Window()
	return items[start:end]
}

// Label is one element of the page-number bar: a page number or the
// ellipsis marker.
type Label struct {
	Page     int
	Ellipsis bool
}

// Ellipsis marks a gap in the page-number bar.
var Ellipsis = Label{Ellipsis: true}

func (l Label) String() string {
	if l.Ellipsis {
		return "..."
	}
	return strconv.Itoa(l.Page)
}

const maxPlainPages = 5

// Labels builds the page-number bar. Up to five pages are all shown;
// beyond that the first and last pages frame a window of three pages
// around the current one.
func (p Pager) Labels() []Label {
	total := p.TotalPages()
	if total <= maxPlainPages {
		out := make([]Label, 0, total)
		for i := 1; i <= total; i++ {
			out = append(out, Label{Page: i})
		}
		return out
	}

	cur := p.Current
	switch {
	case cur <= 2:
		return pages([]int{1, 2, 3}, -1, total)
	case cur >= total-1:
		return pages([]int{1}, total-2, total)
	default:
		return []Label{
			{Page: 1}, Ellipsis,
			{Page: cur - 1}, {Page: cur}, {Page: cur + 1},
			Ellipsis, {Page: total},
		}
	}
}

// pages renders head, an ellipsis, then either the pages from tailFrom to
// last or, when tailFrom is negative, only last.
func pages(head []int, tailFrom, last int) []Label {
	out := make([]Label, 0, len(head)+5)
	for _, n := range head {
		out = append(out, Label{Page: n})
	}
	out = append(out, Ellipsis)
	if tailFrom < 0 {
		return append(out, Label{Page: last})
	}
	for n := tailFrom; n <= last; n++ {
		out = append(out, Label{Page: n})
	}
	return out
}
