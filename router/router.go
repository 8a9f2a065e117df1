package router

import (
	"FileTransfer/internal/handler"
	"FileTransfer/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds the full route table once at startup.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)

	// Token downloads carry no identity; the token alone authorizes.
	r.GET("/download/:token", handler.DownloadByToken)

	auth := r.Group("")
	auth.Use(utils.AuthMiddleware())
	{
		auth.GET("/myuploads", handler.MyUploads)
		auth.POST("/upload", handler.Upload)
		auth.GET("/download", handler.Download)
		auth.GET("/rename", handler.Rename)
		auth.GET("/delete", handler.Delete)

		auth.POST("/share/:fileId", handler.GrantShare)
		auth.GET("/shared", handler.SharedWithMe)
		auth.GET("/sharedbyme", handler.SharedByMe)
		auth.PUT("/remove-share/:fileId", handler.RevokeShare)

		auth.POST("/shareLink/:fileId", handler.IssueShareLink)
		auth.GET("/disable-share/:fileId", handler.DisableShareLink)
	}

	return r
}
