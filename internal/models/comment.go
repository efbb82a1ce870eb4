package models

// CommentAuthor is the author snapshot on a comment, which may be anonymized.
type CommentAuthor struct {
	UID         string `json:"uid"                  bson:"uid"`
	Name        string `json:"name"                 bson:"name"`
	IsAnonymous bool   `json:"is_anonymous"         bson:"isAnonymous"`
	AnonName    string `json:"anon_name,omitempty"  bson:"anonName,omitempty"`
	Avatar      string `json:"avatar,omitempty"     bson:"avatar,omitempty"`
}

// CommentModel is a comment attached to either an article or a project.
// Exactly one of ArticleID / ProjectID is set.
type CommentModel struct {
	Base       `bson:",inline"`
	Content    string        `json:"content"               bson:"content"`
	Author     CommentAuthor `json:"author"                bson:"author"`
	ArticleID  string        `json:"article_id,omitempty"  bson:"articleId,omitempty"`
	ProjectID  string        `json:"project_id,omitempty"  bson:"projectId,omitempty"`
	Likes      int64         `json:"likes"                 bson:"likes"`
	Dislikes   int64         `json:"dislikes"              bson:"dislikes"`
	IsReported bool          `json:"is_reported"           bson:"isReported"`
}

func (CommentModel) Collection() string { return "comments" }

// ReportModel records a user report against a comment.
type ReportModel struct {
	Base      `bson:",inline"`
	CommentID string `json:"comment_id"            bson:"commentId"`
	ArticleID string `json:"article_id,omitempty"  bson:"articleId,omitempty"`
	ProjectID string `json:"project_id,omitempty"  bson:"projectId,omitempty"`
	Reason    string `json:"reason"                bson:"reason"`
	ReporterID string `json:"reporter_id"          bson:"reporterId"`
}

func (ReportModel) Collection() string { return "reports" }
