package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ShareRequest struct {
	FileID            uint64 `json:"file_id" binding:"required"`
	RecipientUsername string `json:"recipient_username" binding:"required"`
}

type DeleteFileRequest struct {
	FileID uint64 `json:"file_id" binding:"required"`
}

type PublicLinkRequest struct {
	FileID uint64 `json:"file_id" binding:"required"`
}
