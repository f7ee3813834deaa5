package dto

// NewsAPIArticle mirrors one element of the top-headlines "articles" array.
// Pointers distinguish a missing field from an empty one.
type NewsAPIArticle struct {
	PublishedAt *string `json:"publishedAt"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
}
