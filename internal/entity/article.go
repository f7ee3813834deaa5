package entity

// Article represents one headline as delivered by the news source.
type Article struct {
	PublishedAt string `json:"published_at"`
	Title       string `json:"title"`
	URL         string `json:"url"`
}

// HasURL reports whether the source supplied a link for the article.
func (a Article) HasURL() bool {
	return a.URL != ""
}
