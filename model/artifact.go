package model

import "time"

type Artifact struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	// StoredName is server-generated (random token + sanitized suffix) and
	// never taken from the caller-supplied name.
	StoredName   string `gorm:"column:stored_name;size:255;not null;uniqueIndex" json:"stored_name"`
	OriginalName string `gorm:"column:original_name;size:255;not null" json:"original_name"`
	FilePath     string `gorm:"column:file_path;size:512;not null;uniqueIndex" json:"-"`

	Size int64 `gorm:"column:size;not null;default:0" json:"size"`

	// IsPublic and ShareToken form one unit: both set on issue, both cleared
	// on revoke, always in the same UPDATE.
	IsPublic   bool    `gorm:"column:is_public;not null;default:false" json:"is_public"`
	ShareToken *string `gorm:"column:share_token;size:64;uniqueIndex" json:"share_token,omitempty"`

	UploadedAt time.Time `gorm:"column:uploaded_at;not null" json:"uploaded_at"`
}

// TableName returns the database table name.
func (Artifact) TableName() string {
	return "artifact"
}
