package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Genre       string `json:"genre" validate:"required,max=50"`
	PosterURL   string `json:"posterUrl" validate:"required,url,max=500"`
}
