package service

import (
	"FileHaven/config"
	"FileHaven/internal/apperr"
	"FileHaven/internal/repo"
	"FileHaven/internal/storage"
	"FileHaven/model"
	"FileHaven/utils"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

// StoreArtifact writes the uploaded bytes to the object store first, then
// commits metadata. A failed metadata commit removes the stored object, so a
// crash can only leave an orphan file, never a row pointing at nothing.
func StoreArtifact(ctx context.Context, ownerID uint64, originalName string, reader io.Reader, maxSize int64) (*model.Artifact, error) {
	if originalName == "" {
		return nil, apperr.ErrInvalidInput
	}
	if maxSize <= 0 {
		maxSize = config.AppConfig.MaxUploadBytes
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(reader, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read upload: %v", apperr.ErrIO, err)
	}
	if n > maxSize {
		return nil, apperr.ErrTooLarge
	}

	// uuid prefix keeps stored names collision-free and independent of the
	// caller-supplied name
	storedName := utils.GetToken() + "_" + utils.SanitizeFilename(originalName)
	if storage.Default == nil {
		return nil, fmt.Errorf("%w: storage not initialized", apperr.ErrIO)
	}
	if err := storage.Default.PutObject(ctx, storedName, &buf, n, storage.PutOptions{}); err != nil {
		return nil, fmt.Errorf("%w: write object: %v", apperr.ErrIO, err)
	}

	artifact := model.Artifact{
		UserID:       ownerID,
		StoredName:   storedName,
		OriginalName: originalName,
		FilePath:     filepath.Join(config.AppConfig.StorageRoot, storedName),
		Size:         n,
		UploadedAt:   time.Now(),
	}
	if err := repo.Db.Create(&artifact).Error; err != nil {
		_ = storage.Default.RemoveObject(ctx, storedName)
		return nil, err
	}
	return &artifact, nil
}

// ListOwnedBy returns a user's artifacts, newest first.
func ListOwnedBy(userID uint64) ([]model.Artifact, error) {
	var artifacts []model.Artifact
	err := repo.Db.
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&artifacts).Error
	return artifacts, err
}

// GetArtifact returns an artifact by ID.
func GetArtifact(artifactID uint64) (*model.Artifact, error) {
	var artifact model.Artifact
	if err := repo.Db.Where("id = ?", artifactID).First(&artifact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &artifact, nil
}

// DeleteArtifact removes the artifact's grants, row and backing object as one
// unit. The object is unlinked inside the transaction, so an unlink failure
// rolls the metadata back and leaves everything intact.
func DeleteArtifact(ctx context.Context, callerID, artifactID uint64) error {
	artifact, err := GetArtifact(artifactID)
	if err != nil {
		return err
	}
	if artifact.UserID != callerID {
		return apperr.ErrForbidden
	}

	err = repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artifact_id = ?", artifactID).Delete(&model.ShareGrant{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Artifact{}, artifactID).Error; err != nil {
			return err
		}
		if storage.Default == nil {
			return fmt.Errorf("%w: storage not initialized", apperr.ErrIO)
		}
		if err := storage.Default.RemoveObject(ctx, artifact.StoredName); err != nil {
			return fmt.Errorf("%w: remove object: %v", apperr.ErrIO, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if artifact.ShareToken != nil {
		_ = utils.InvalidatePublicLinkCache(ctx, *artifact.ShareToken)
	}
	return nil
}
