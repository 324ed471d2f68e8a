package ctdf

// Paginate returns the 1-based page of items. Pages past the end are empty,
// however large the page number.
func Paginate[T any](items []T, page int, limit int) []T {
	if page < 1 || limit < 1 || len(items) == 0 {
		return []T{}
	}

	// Compared by division so huge page numbers cannot overflow the offset
	if page-1 > (len(items)-1)/limit {
		return []T{}
	}

	start := (page - 1) * limit
	end := len(items)
	if limit < end-start {
		end = start + limit
	}

	return items[start:end]
}

func PageCount(total int, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return pages
}
