package repository

import (
	"context"

	"github.com/devakalpa1/DeckOracle/internal/database"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func CreateFolder(ctx context.Context, folder *models.Folder) error {
	return database.DB.WithContext(ctx).Create(folder).Error
}

func GetFolder(ctx context.Context, userID, folderID uuid.UUID) (*models.Folder, error) {
	var folder models.Folder
	result := database.DB.WithContext(ctx).
		First(&folder, "id = ? AND user_id = ?", folderID, userID)
	return &folder, result.Error
}

func ListFolders(ctx context.Context, userID uuid.UUID) ([]models.Folder, error) {
	var folders []models.Folder
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position, created_at").
		Find(&folders).Error
	return folders, err
}

// ListSubfolders returns the direct children of a folder.
func ListSubfolders(ctx context.Context, userID, folderID uuid.UUID) ([]models.Folder, error) {
	var folders []models.Folder
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND parent_folder_id = ?", userID, folderID).
		Order("position, created_at").
		Find(&folders).Error
	return folders, err
}

func UpdateFolder(ctx context.Context, userID, folderID uuid.UUID, updates map[string]interface{}) error {
	return database.DB.WithContext(ctx).Model(&models.Folder{}).
		Where("id = ? AND user_id = ?", folderID, userID).
		Updates(updates).Error
}

func DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error {
	return database.DB.WithContext(ctx).
		Delete(&models.Folder{}, "id = ? AND user_id = ?", folderID, userID).Error
}
