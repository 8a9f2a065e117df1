package handler

import (
	"FileTransfer/internal/dto"
	"FileTransfer/internal/service"
	"FileTransfer/internal/storage"
	"FileTransfer/model"
	"FileTransfer/utils"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MyUploads lists the caller's own files.
func MyUploads(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	records, err := service.FindByOwner(userID)
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

// Upload stores the blob first and registers the record only after the
// write succeeded, so metadata never points at a missing blob.
func Upload(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Fail(c, errors.New("file required"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	defer src.Close()

	storedName, storagePath, err := storage.Default.Write(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		src,
		fileHeader.Size,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed: " + err.Error()})
		return
	}

	record := &model.FileRecord{
		StoredName:  storedName,
		DisplayName: fileHeader.Filename,
		StoragePath: storagePath,
		OwnerID:     userID,
	}
	if err := service.CreateFileRecord(record); err != nil {
		// Registration failed after the write; the blob is orphaned but
		// never reachable.
		log.Printf("register upload failed, orphaned blob %s: %v", storagePath, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	utils.Success(c, dto.NewFileInfo(record))
}

// Download streams a file the caller owns or was granted. A record the
// caller cannot see reads as not found.
func Download(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	fileID, err := strconv.ParseUint(c.Query("fileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileId required"})
		return
	}

	record, err := service.GetFileByID(fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	if record.OwnerID != userID && !service.IsGrantee(userID, fileID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	streamRecord(c, record)
}

// Rename updates the display name of an owned file.
func Rename(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	fileID, err := strconv.ParseUint(c.Query("fileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileId required"})
		return
	}
	newName := c.Query("newName")
	if newName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newName required"})
		return
	}

	record, err := service.RenameFile(userID, fileID, newName)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.Success(c, dto.NewFileInfo(record))
}

// Delete removes the record, then the blob. Blob removal is best effort;
// an orphaned blob is logged and not rolled back.
func Delete(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	fileID, err := strconv.ParseUint(c.Query("fileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileId required"})
		return
	}

	record, err := service.DeleteFileRecord(userID, fileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to delete this file"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := storage.Default.Remove(c.Request.Context(), record.StoragePath); err != nil {
		log.Printf("remove blob %s failed: %v", record.StoragePath, err)
	}
	c.JSON(http.StatusOK, gin.H{"msg": "file deleted"})
}

// streamRecord writes the blob to the response with download headers.
func streamRecord(c *gin.Context, record *model.FileRecord) {
	object, info, err := storage.Default.Open(c.Request.Context(), record.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer object.Close()

	safeName := utils.SanitizeHeaderFilename(record.DisplayName)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, safeName))
	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Length", fmt.Sprintf("%d", info.Size))

	if _, err := io.Copy(c.Writer, object); err != nil {
		log.Printf("stream %s failed: %v", record.StoragePath, err)
	}
}
