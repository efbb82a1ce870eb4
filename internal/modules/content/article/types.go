package article

import "errors"

type CreateArticleDTO struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Excerpt        string   `json:"excerpt"`
	Tags           []string `json:"tags"`
	FeaturedImage  string   `json:"featuredImage"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
}

type UpdateArticleDTO struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Excerpt        string   `json:"excerpt"`
	Tags           []string `json:"tags"`
	FeaturedImage  string   `json:"featuredImage"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
}

var (
	errArticleNotFound = errors.New("article not found")
	errSlugTaken       = errors.New("article slug already exists")
)
