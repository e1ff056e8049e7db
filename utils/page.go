package utils

// MenuItem is a navigation entry. Page handlers pass the menu explicitly in
// their response context instead of inheriting it.
type MenuItem struct {
	Title   string `json:"title"`
	URLName string `json:"url_name"`
}

var Menu = []MenuItem{
	{Title: "Home", URLName: "home"},
	{Title: "About", URLName: "about"},
	{Title: "Add car (quick)", URLName: "add_car_quick"},
	{Title: "Add car (full)", URLName: "add_car"},
	{Title: "Upload file", URLName: "upload_file"},
}

// PageWindow returns the page numbers shown around the current page: at most
// window pages on each side, clamped to [1, total].
func PageWindow(current, total, window int) []int {
	if total < 1 {
		return []int{}
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - window
	if start < 1 {
		start = 1
	}
	end := current + window
	if end > total {
		end = total
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
