package models

// Response is the envelope shared by every endpoint.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes pages as ceil(total/limit).
func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

func Success(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Paginated(data interface{}, p *Pagination) Response {
	return Response{Success: true, Data: data, Pagination: p}
}

func Failure(message string, fields []FieldError) Response {
	return Response{Success: false, Message: message, Errors: fields}
}
