package service

import (
	"FileHaven/internal/apperr"
	"FileHaven/internal/repo"
	"FileHaven/model"
	"errors"
	"time"

	"gorm.io/gorm"
)

// IsOwner checks artifact ownership.
func IsOwner(userID, artifactID uint64) bool {
	var count int64
	err := repo.Db.
		Model(&model.Artifact{}).
		Where("id = ? AND user_id = ?", artifactID, userID).
		Count(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}

// hasGrant checks whether a grant exists for (artifact, user).
func hasGrant(artifactID, userID uint64) (bool, error) {
	var count int64
	err := repo.Db.
		Model(&model.ShareGrant{}).
		Where("artifact_id = ? AND user_id = ?", artifactID, userID).
		Count(&count).Error
	return count > 0, err
}

// AuthorizeDownload returns the artifact if the caller is its owner or a
// grantee, and a permission error otherwise.
func AuthorizeDownload(callerID, artifactID uint64) (*model.Artifact, error) {
	artifact, err := GetArtifact(artifactID)
	if err != nil {
		return nil, err
	}
	if artifact.UserID == callerID {
		return artifact, nil
	}
	granted, err := hasGrant(artifactID, callerID)
	if err != nil {
		return nil, err
	}
	if !granted {
		return nil, apperr.ErrForbidden
	}
	return artifact, nil
}

// ShareWith grants a user read access to an artifact. Only the owner may
// grant; self-shares and duplicate grants are rejected. The composite unique
// index resolves racing duplicates to exactly one grant.
func ShareWith(callerID, artifactID uint64, recipientUsername string) error {
	artifact, err := GetArtifact(artifactID)
	if err != nil {
		return err
	}
	if artifact.UserID != callerID {
		return apperr.ErrForbidden
	}
	recipient, err := FindUserByUsername(recipientUsername)
	if err != nil {
		return err
	}
	if recipient.ID == callerID {
		return apperr.ErrSelfShare
	}
	granted, err := hasGrant(artifactID, recipient.ID)
	if err != nil {
		return err
	}
	if granted {
		return apperr.ErrAlreadyShared
	}

	grant := model.ShareGrant{
		ArtifactID: artifactID,
		UserID:     recipient.ID,
		GrantedAt:  time.Now(),
	}
	if err := repo.Db.Create(&grant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrAlreadyShared
		}
		return err
	}
	return nil
}

// RevokeShare removes a grant. Owner-only.
func RevokeShare(callerID, artifactID uint64, recipientUsername string) error {
	artifact, err := GetArtifact(artifactID)
	if err != nil {
		return err
	}
	if artifact.UserID != callerID {
		return apperr.ErrForbidden
	}
	recipient, err := FindUserByUsername(recipientUsername)
	if err != nil {
		return err
	}
	res := repo.Db.
		Where("artifact_id = ? AND user_id = ?", artifactID, recipient.ID).
		Delete(&model.ShareGrant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// ListSharedWithMe returns all artifacts shared with a user, most recently
// granted first.
func ListSharedWithMe(userID uint64) ([]model.Artifact, error) {
	var artifacts []model.Artifact
	err := repo.Db.
		Model(&model.Artifact{}).
		Select("artifact.*").
		Joins("JOIN share_grant ON share_grant.artifact_id = artifact.id").
		Where("share_grant.user_id = ?", userID).
		Order("share_grant.granted_at DESC").
		Find(&artifacts).Error
	return artifacts, err
}

// ListGrantsFor returns the users an artifact is shared with. Owner-only.
func ListGrantsFor(callerID, artifactID uint64) ([]model.User, error) {
	artifact, err := GetArtifact(artifactID)
	if err != nil {
		return nil, err
	}
	if artifact.UserID != callerID {
		return nil, apperr.ErrForbidden
	}
	var users []model.User
	err = repo.Db.
		Model(&model.User{}).
		Select("user_db.*").
		Joins("JOIN share_grant ON share_grant.user_id = user_db.id").
		Where("share_grant.artifact_id = ?", artifactID).
		Order("share_grant.granted_at ASC").
		Find(&users).Error
	return users, err
}
