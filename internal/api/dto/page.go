package dto

// Page wraps one page of results with the metadata clients need to paginate.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage assembles pagination metadata for a result slice.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}
