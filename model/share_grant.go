package model

import "time"

type ShareGrant struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	ArtifactID uint64   `gorm:"column:artifact_id;not null;index;uniqueIndex:uk_artifact_user,priority:1" json:"artifact_id"`
	Artifact   Artifact `gorm:"foreignKey:ArtifactID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	UserID uint64 `gorm:"column:user_id;not null;index;uniqueIndex:uk_artifact_user,priority:2" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID" json:"-"`

	GrantedAt time.Time `gorm:"column:granted_at;not null" json:"granted_at"`
}

// TableName returns the database table name.
func (ShareGrant) TableName() string {
	return "share_grant"
}
