package models

// PagedUsers is one cached page snapshot. Items holds at most the page size,
// Total counts records across all pages, TotalPages is derived from Total.
type PagedUsers struct {
	Items      []User `json:"items"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
}

// TotalPagesFor computes ceil(total/perPage), floored at 1 so an empty
// collection still renders as a single page.
func TotalPagesFor(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// Clone returns a deep copy so callers can never alias a cached snapshot.
func (p PagedUsers) Clone() PagedUsers {
	out := p
	out.Items = make([]User, len(p.Items))
	copy(out.Items, p.Items)
	return out
}

// Page slices the full collection the way the fixture backend would have,
// had it honored page parameters: records [(page-1)*perPage, page*perPage).
func Page(all []User, page, perPage int) PagedUsers {
	total := len(all)
	totalPages := TotalPagesFor(total, perPage)

	start := (page - 1) * perPage
	if start < 0 {
		start = 0
	}
	end := start + perPage
	if end < start {
		end = start
	}
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]User, end-start)
	copy(items, all[start:end])

	return PagedUsers{Items: items, Total: total, TotalPages: totalPages}
}
