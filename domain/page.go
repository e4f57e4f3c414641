package domain

// DishPageSize is the fixed number of dishes per page.
const DishPageSize = 3

// PageInfo describes a page of a filtered collection.
type PageInfo struct {
	Page       int `json:"page"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// DishPage is the paginated response for a restaurant's dishes.
type DishPage struct {
	Info PageInfo   `json:"info"`
	Data []DishView `json:"data"`
}

// Paginate computes the page metadata and the [start, end) window into a
// collection of total items. Pages below 1 are clamped to 1; pages past
// the end produce an empty window.
func Paginate(total, page, size int) (PageInfo, int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DishPageSize
	}
	totalPages := max((total+size-1)/size, 1)

	info := PageInfo{Page: page, Total: total, TotalPages: totalPages}
	if page > totalPages {
		return info, total, total
	}
	start := (page - 1) * size
	end := min(start+size, total)

	return info, start, end
}
