package models

// Response is the envelope for single-entity endpoints.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PagedResponse is the envelope for list endpoints.
type PagedResponse struct {
	Data       interface{} `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalPages int         `json:"totalPages"`
}

// NewPagedResponse builds a list envelope, computing totalPages as
// ceil(total/size).
func NewPagedResponse(data interface{}, total, page, size int) PagedResponse {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return PagedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
