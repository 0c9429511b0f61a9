package router

import (
	"FileHaven/internal/handler"
	"FileHaven/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/register", handler.Register)
		api.POST("/login", handler.Login)

		auth := api.Group("")
		auth.Use(utils.AuthMiddleware())

		file := auth.Group("/file")
		{
			file.GET("/list", handler.ListFiles)
			file.GET("/shared", handler.ListSharedFiles)
			file.POST("/upload", handler.UploadFile)
			file.GET("/download/:fileID", handler.DownloadFile)
			file.POST("/delete", handler.DeleteFile)
		}

		share := auth.Group("/share")
		{
			share.POST("/create", handler.CreateShare)
			share.POST("/revoke", handler.RevokeShare)
			share.GET("/list/:fileID", handler.ListShareGrants)
			share.POST("/public", handler.IssuePublicLink)
			share.POST("/public/revoke", handler.RevokePublicLink)
		}

		// anonymous access, scoped by token alone
		api.GET("/public/:token", handler.PublicDownload)
	}
	return r
}
