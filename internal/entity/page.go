package entity

// DefaultPageSize is the number of rows on one list page.
const DefaultPageSize = 10

type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Paginate returns page number (1-based) of items. Numbers below 1 are treated as 1.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	if number < 1 {
		number = 1
	}

	total := len(items)
	p := Page[T]{
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
		Items:      []T{},
	}

	// Compare before multiplying so huge page numbers cannot overflow.
	if number-1 >= p.TotalPages {
		return p
	}

	from := (number - 1) * size
	to := min(from+size, total)
	p.Items = items[from:to]

	return p
}
