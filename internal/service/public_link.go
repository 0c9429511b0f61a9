package service

import (
	"FileHaven/internal/apperr"
	"FileHaven/internal/repo"
	"FileHaven/model"
	"FileHaven/utils"
	"errors"
	"time"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

const publicLinkCacheTTL = 5 * time.Minute

// IssuePublicLink mints an anonymous read token for an artifact. Idempotent:
// if a token is already active, the existing one is returned. The guarded
// UPDATE makes concurrent issuance converge on a single token.
func IssuePublicLink(callerID, artifactID uint64) (string, error) {
	artifact, err := GetArtifact(artifactID)
	if err != nil {
		return "", err
	}
	if artifact.UserID != callerID {
		return "", apperr.ErrForbidden
	}
	if artifact.IsPublic && artifact.ShareToken != nil {
		return *artifact.ShareToken, nil
	}

	token := utils.GetToken()
	res := repo.Db.Model(&model.Artifact{}).
		Where("id = ? AND share_token IS NULL", artifactID).
		Updates(map[string]interface{}{
			"is_public":   true,
			"share_token": token,
		})
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		// lost the race, another caller issued first
		current, err := GetArtifact(artifactID)
		if err != nil {
			return "", err
		}
		if current.ShareToken == nil {
			return "", apperr.ErrNotFound
		}
		token = *current.ShareToken
	}

	_ = utils.SetPublicLinkArtifactID(context.Background(), token, artifactID, publicLinkCacheTTL)
	return token, nil
}

// ResolvePublicLink looks up an artifact by an active public token. Tokens on
// artifacts whose public flag is off never resolve.
func ResolvePublicLink(ctx context.Context, token string) (*model.Artifact, error) {
	if token == "" {
		return nil, apperr.ErrNotFound
	}

	if id, ok := utils.GetPublicLinkArtifactID(ctx, token); ok {
		artifact, err := GetArtifact(id)
		if err == nil && artifact.IsPublic && artifact.ShareToken != nil && *artifact.ShareToken == token {
			return artifact, nil
		}
		// stale mapping, drop it and fall through to the database
		_ = utils.InvalidatePublicLinkCache(ctx, token)
	}

	var artifact model.Artifact
	err := repo.Db.
		Where("share_token = ? AND is_public = ?", token, true).
		First(&artifact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	_ = utils.SetPublicLinkArtifactID(ctx, token, artifact.ID, publicLinkCacheTTL)
	return &artifact, nil
}

// RevokePublicLink clears the public flag and token together so the pair can
// never disagree. Owner-only. Revoking an artifact without an active link is
// a no-op.
func RevokePublicLink(callerID, artifactID uint64) error {
	artifact, err := GetArtifact(artifactID)
	if err != nil {
		return err
	}
	if artifact.UserID != callerID {
		return apperr.ErrForbidden
	}
	if artifact.ShareToken == nil && !artifact.IsPublic {
		return nil
	}

	if err := repo.Db.Model(&model.Artifact{}).
		Where("id = ?", artifactID).
		Updates(map[string]interface{}{
			"is_public":   false,
			"share_token": nil,
		}).Error; err != nil {
		return err
	}

	if artifact.ShareToken != nil {
		_ = utils.InvalidatePublicLinkCache(context.Background(), *artifact.ShareToken)
	}
	return nil
}
