package dto

// CreateRepositoryRequest is the payload for registering a repository.
type CreateRepositoryRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	URL    string `json:"url" binding:"required,url"`
	Branch string `json:"branch" binding:"omitempty,max=100"`
}

// UpdateRepositoryRequest carries a partial update.
type UpdateRepositoryRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	URL    *string `json:"url" binding:"omitempty,url"`
	Branch *string `json:"branch" binding:"omitempty,max=100"`
}
