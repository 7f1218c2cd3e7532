package repository

import (
	"context"

	"github.com/devakalpa1/DeckOracle/internal/database"
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func CreateUser(ctx context.Context, email, password, displayName string) (*models.User, error) {
	user := &models.User{
		Email:       email,
		DisplayName: displayName,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	result := database.DB.WithContext(ctx).Create(user)
	return user, result.Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "id = ?", id)
	return &user, result.Error
}

func UpdateUser(ctx context.Context, userID uuid.UUID, displayName string) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Update("display_name", displayName).Error
}

func UpdateUserPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	user := models.User{}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", user.PasswordHash).Error
}

func UpdateUserReminders(ctx context.Context, userID uuid.UUID, enabled bool, reminderTime string) error {
	return database.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reminders_enabled": enabled,
			"reminder_time":     reminderTime,
		}).Error
}

func DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return database.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", userID).Error
}
