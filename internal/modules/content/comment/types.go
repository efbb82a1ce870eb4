package comment

import "errors"

type CreateCommentDTO struct {
	Content     string `json:"content"`
	IsAnonymous bool   `json:"isAnonymous"`
	AnonName    string `json:"anonName"`
	ArticleID   string `json:"articleId"`
	ProjectID   string `json:"projectId"`
}

type UpdateCommentDTO struct {
	Content string `json:"content"`
}

var errCommentNotFound = errors.New("comment not found")
