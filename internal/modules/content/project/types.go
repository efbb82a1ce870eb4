package project

import (
	"errors"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

type CreateProjectDTO struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	Images      []string      `json:"images"`
	Links       []models.Link `json:"links"`
}

type UpdateProjectDTO struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	Images      []string      `json:"images"`
	Links       []models.Link `json:"links"`
}

// Sort orders accepted by the project list endpoint.
const (
	SortRecent   = "recent"
	SortPopular  = "popular"
	SortTrending = "trending"
)

var errProjectNotFound = errors.New("project not found")
