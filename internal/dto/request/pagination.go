package request

import (
	"net/url"
	"strconv"
)

// MovieListQuery mirrors the movie list query flags of the backend.
// Page is zero-based there.
type MovieListQuery struct {
	Page      int  `json:"page" validate:"min=0"`
	Size      int  `json:"size" validate:"min=1,max=100"`
	Paginated bool `json:"paginated"`
}

func (q MovieListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("size", strconv.Itoa(q.Size))
	values.Set("paginated", strconv.FormatBool(q.Paginated))
	return values
}
