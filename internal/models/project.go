package models

// ProjectModel is a community forum post.
type ProjectModel struct {
	Base        `bson:",inline"`
	Title       string    `json:"title"       bson:"title"`
	Description string    `json:"description" bson:"description"`
	Author      AuthorRef `json:"author"      bson:"author"`
	Tags        []string  `json:"tags"        bson:"tags"`
	Images      []string  `json:"images"      bson:"images"`
	Links       []Link    `json:"links"       bson:"links"`
	Likes       int64     `json:"likes"       bson:"likes"`
	Dislikes    int64     `json:"dislikes"    bson:"dislikes"`
	Views       int64     `json:"views"       bson:"views"`
	IsPopular   bool      `json:"is_popular"  bson:"isPopular"`
}

func (ProjectModel) Collection() string { return "projects" }
