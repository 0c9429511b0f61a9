package dto

import "FileHaven/model"

// FileListResponse carries a finite, ordered artifact list.
type FileListResponse struct {
	Files []model.Artifact `json:"files"`
	Total int              `json:"total"`
}

// PublicLinkResponse carries an issued public token.
type PublicLinkResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// GrantListResponse lists who an artifact is shared with.
type GrantListResponse struct {
	Users []model.User `json:"users"`
}
