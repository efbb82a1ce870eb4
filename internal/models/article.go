package models

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
	ArticleArchived  ArticleStatus = "archived"
)

// ArticleModel is a news article.
type ArticleModel struct {
	Base           `bson:",inline"`
	Title          string        `json:"title"           bson:"title"`
	Slug           string        `json:"slug"            bson:"slug"`
	Content        string        `json:"content"         bson:"content"`
	Excerpt        string        `json:"excerpt"         bson:"excerpt"`
	Author         AuthorRef     `json:"author"          bson:"author"`
	FeaturedImage  string        `json:"featured_image,omitempty" bson:"featuredImage,omitempty"`
	Status         ArticleStatus `json:"status"          bson:"status"`
	Views          int64         `json:"views"           bson:"views"`
	Tags           []string      `json:"tags"            bson:"tags"`
	SEOTitle       string        `json:"seo_title,omitempty"       bson:"seoTitle,omitempty"`
	SEODescription string        `json:"seo_description,omitempty" bson:"seoDescription,omitempty"`
}

func (ArticleModel) Collection() string { return "articles" }
