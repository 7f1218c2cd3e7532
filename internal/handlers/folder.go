package handlers

import (
	"net/http"

	"github.com/devakalpa1/DeckOracle/internal/models"
	"github.com/devakalpa1/DeckOracle/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FolderHandler struct {
	log *zap.Logger
}

func NewFolderHandler(log *zap.Logger) *FolderHandler {
	return &FolderHandler{log: log}
}

type folderRequest struct {
	Name           string     `json:"name" binding:"required"`
	ParentFolderID *uuid.UUID `json:"parent_folder_id"`
	Position       *int       `json:"position"`
}

func (h *FolderHandler) Create(c *gin.Context) {
	user := mustUser(c)

	var req folderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	folder := &models.Folder{
		UserID:         user.ID,
		ParentFolderID: req.ParentFolderID,
		Name:           req.Name,
	}
	if req.Position != nil {
		folder.Position = *req.Position
	}

	if err := repository.CreateFolder(c.Request.Context(), folder); err != nil {
		h.log.Error("Failed to create folder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create folder"})
		return
	}
	c.JSON(http.StatusCreated, folder)
}

func (h *FolderHandler) List(c *gin.Context) {
	user := mustUser(c)

	folders, err := repository.ListFolders(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list folders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list folders"})
		return
	}
	c.JSON(http.StatusOK, folders)
}

// Get returns a folder together with its subfolders and decks.
func (h *FolderHandler) Get(c *gin.Context) {
	user := mustUser(c)
	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder id"})
		return
	}

	folder, err := repository.GetFolder(c.Request.Context(), user.ID, folderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	subfolders, err := repository.ListSubfolders(c.Request.Context(), user.ID, folderID)
	if err != nil {
		h.log.Error("Failed to list subfolders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load folder contents"})
		return
	}
	decks, err := repository.ListDecksInFolder(c.Request.Context(), user.ID, folderID)
	if err != nil {
		h.log.Error("Failed to list folder decks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load folder contents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"folder":     folder,
		"subfolders": subfolders,
		"decks":      decks,
	})
}

func (h *FolderHandler) Update(c *gin.Context) {
	user := mustUser(c)
	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder id"})
		return
	}

	var req struct {
		Name           *string    `json:"name"`
		ParentFolderID *uuid.UUID `json:"parent_folder_id"`
		Position       *int       `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ParentFolderID != nil {
		updates["parent_folder_id"] = *req.ParentFolderID
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := repository.UpdateFolder(c.Request.Context(), user.ID, folderID, updates); err != nil {
		h.log.Error("Failed to update folder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update folder"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FolderHandler) Delete(c *gin.Context) {
	user := mustUser(c)
	folderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder id"})
		return
	}

	if err := repository.DeleteFolder(c.Request.Context(), user.ID, folderID); err != nil {
		h.log.Error("Failed to delete folder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete folder"})
		return
	}
	c.Status(http.StatusNoContent)
}
