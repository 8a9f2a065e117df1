package handler

import (
	"FileTransfer/config"
	"FileTransfer/internal/dto"
	"FileTransfer/internal/service"
	"FileTransfer/internal/task"
	"FileTransfer/utils"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// GrantShare adds direct grants by email on an owned file and queues a
// notice mail per resolved grantee.
func GrantShare(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	fileID, err := strconv.ParseUint(c.Param("fileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userEmails required"})
		return
	}

	record, err := service.GetFileByID(fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	if record.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this file"})
		return
	}

	users, err := service.GrantByEmails(fileID, req.UserEmails)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no users found with the provided email addresses"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ownerName := c.MustGet("username").(string)
	task.EnqueueShareNotices(record, ownerName, users)

	c.JSON(http.StatusOK, gin.H{"msg": "users added to the share list", "granted": len(users)})
}

// SharedWithMe lists files other users granted to the caller.
func SharedWithMe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	records, err := service.FindSharedWith(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	files := make([]dto.FileInfo, 0, len(records))
	for i := range records {
		files = append(files, dto.NewSharedFileInfo(&records[i]))
	}
	utils.Success(c, files)
}

// SharedByMe lists the caller's files that carry grants.
func SharedByMe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	records, err := service.FindSharedByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	files := make([]dto.FileInfo, 0, len(records))
	for i := range records {
		files = append(files, dto.NewFileInfo(&records[i]))
	}
	utils.Success(c, files)
}

// RevokeShare removes a grant. Owners may name any target user; grantees
// remove themselves by leaving the target unset.
func RevokeShare(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	fileID, err := strconv.ParseUint(c.Param("fileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}
	// An empty body means self-revoke; a malformed one is an error.
	var req dto.RevokeShareRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err = service.RevokeGrant(fileID, userID, req.TargetUserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "you may only remove your own grant"})
		case errors.Is(err, service.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user not in share list"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user removed"})
}

// IssueShareLink activates an anonymous download link and returns its URL.
func IssueShareLink(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	fileID, err := strconv.ParseUint(c.Param("fileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	token, err := service.IssueLink(c.Request.Context(), fileID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "file already shared"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": buildShareLink(c, token)})
}

// DownloadByToken streams a file to any bearer of an active link token.
func DownloadByToken(c *gin.Context) {
	token := c.Param("token")
	record, err := service.ResolveByToken(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	streamRecord(c, record)
}

// DisableShareLink deactivates the link and clears its token.
func DisableShareLink(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	fileID, err := strconv.ParseUint(c.Param("fileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	err = service.DisableLink(c.Request.Context(), fileID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "file is not shared"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "sharable link disabled"})
}

// buildShareLink assembles the public download URL from the request, or
// from APP_BASE_URL behind a proxy.
func buildShareLink(c *gin.Context, token string) string {
	baseURL := strings.TrimSpace(config.AppConfig.AppBaseURL)
	if baseURL == "" {
		baseURL = appBaseURL(c)
	}
	baseURL = strings.TrimRight(baseURL, "/")
	return baseURL + "/download/" + url.PathEscape(token)
}

func appBaseURL(c *gin.Context) string {
	scheme := "http"
	if forwarded := strings.TrimSpace(c.GetHeader("X-Forwarded-Proto")); forwarded != "" {
		scheme = forwarded
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	host := strings.TrimSpace(c.GetHeader("X-Forwarded-Host"))
	if host == "" {
		host = c.Request.Host
	}
	return scheme + "://" + host
}
