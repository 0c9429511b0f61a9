package handler

import (
	"FileHaven/config"
	"FileHaven/internal/dto"
	"FileHaven/internal/service"
	"FileHaven/internal/storage"
	"FileHaven/model"
	"FileHaven/utils"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListFiles lists the caller's own artifacts.
func ListFiles(c *gin.Context) {
	files, err := service.ListOwnedBy(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	utils.Success(c, dto.FileListResponse{Files: files, Total: len(files)})
}

// ListSharedFiles lists artifacts shared with the caller.
func ListSharedFiles(c *gin.Context) {
	files, err := service.ListSharedWithMe(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	utils.Success(c, dto.FileListResponse{Files: files, Total: len(files)})
}

// UploadFile stores a multipart upload as a new artifact.
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file part"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no selected file"})
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload"})
		return
	}
	defer src.Close()

	artifact, err := service.StoreArtifact(
		c.Request.Context(),
		currentUserID(c),
		fileHeader.Filename,
		src,
		config.AppConfig.MaxUploadBytes,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.Success(c, artifact)
}

// DownloadFile streams an artifact to its owner or a grantee.
func DownloadFile(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("fileID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}
	artifact, err := service.AuthorizeDownload(currentUserID(c), fileID)
	if err != nil {
		writeError(c, err)
		return
	}
	streamArtifact(c, artifact)
}

// DeleteFile removes an artifact, its grants and its backing object.
func DeleteFile(c *gin.Context) {
	var req dto.DeleteFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}
	if err := service.DeleteArtifact(c.Request.Context(), currentUserID(c), req.FileID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "file deleted"})
}

// streamArtifact writes an artifact's bytes with download headers.
func streamArtifact(c *gin.Context, artifact *model.Artifact) {
	if storage.Default == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage not initialized"})
		return
	}
	object, info, err := storage.Default.GetObject(c.Request.Context(), artifact.StoredName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read object failed"})
		return
	}
	defer object.Close()

	safeName := utils.SanitizeHeaderFilename(artifact.OriginalName)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, safeName))
	contentType := mime.TypeByExtension(filepath.Ext(artifact.OriginalName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Length", fmt.Sprintf("%d", info.Size))

	if _, err := io.Copy(c.Writer, object); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "download failed"})
		return
	}
}
