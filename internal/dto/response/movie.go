package response

type MovieResponse struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Genre       string `json:"genre" yaml:"genre"`
	PosterURL   string `json:"posterUrl" yaml:"posterUrl"`
}
