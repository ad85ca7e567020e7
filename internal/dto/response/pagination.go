package response

import "movie-booking-client/pkg/utils"

// Page is the paged list shape of the backend (zero-based page number).
type Page[T any] struct {
	Content       []T   `json:"content" yaml:"content"`
	TotalElements int64 `json:"totalElements" yaml:"totalElements"`
	TotalPages    int   `json:"totalPages" yaml:"totalPages"`
	Number        int   `json:"number" yaml:"number"`
	Size          int   `json:"size" yaml:"size"`
	First         bool  `json:"first" yaml:"first"`
	Last          bool  `json:"last" yaml:"last"`
}

// PaginatedResponse is a client-side page over an already fetched list.
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data" yaml:"data"`
	Pagination PaginationMeta `json:"pagination" yaml:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total" yaml:"total"`
	Page       int   `json:"page" yaml:"page"`
	PerPage    int   `json:"per_page" yaml:"per_page"`
	TotalPages int   `json:"total_pages" yaml:"total_pages"`
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) *PaginatedResponse[T] {
	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: utils.CalculateTotalPages(total, perPage),
		},
	}
}
