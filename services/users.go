package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobhub/db"
	"jobhub/models"
)

// UserService - операции над анкетами соискателей, завязанные на гео-шардинг.
// Роутер только вычисляет shard_id; сохранение его на пользователе - обязанность
// этого сервиса.
type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

// RegisterUser создает анкету и назначает шард по стране регистрации.
// Нераспознанная страна не блокирует регистрацию - пользователь уходит
// в дефолтный регион.
func (us *UserService) RegisterUser(ctx context.Context, user *models.User) (int64, error) {
	if user == nil || user.Nickname == "" {
		return 0, errors.New("nickname is empty")
	}

	var alreadyExists int64
	err := db.GetReadOnlyDB(ctx).Model(&models.User{}).Where("nickname = ?", user.Nickname).Count(&alreadyExists).Error
	if err != nil {
		return 0, fmt.Errorf("error checking if user exists: %w", err)
	}
	if alreadyExists > 0 {
		return 0, errors.New("user already exists")
	}

	user.ShardID = Router.ShardIDForCode(user.Country)

	if err := db.GetWriteDB(ctx).Create(user).Error; err != nil {
		return 0, err
	}

	ShardStatsInstance.TrackUserAssigned(ctx, user.ShardID)
	log.Printf("Registered user %d (%s) on shard %s", user.ID, user.Country, user.ShardID)
	return user.ID, nil
}

// ChangeUserCountry меняет страну пользователя. Если новая страна живет
// в другом регионе, роутер публикует migration intent, а новый shard_id
// сохраняется здесь вместе со страной.
func (us *UserService) ChangeUserCountry(ctx context.Context, userID int64, newCountry string) (string, error) {
	var user models.User
	err := db.GetReadOnlyDB(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		return "", fmt.Errorf("user %d not found: %w", userID, err)
	}

	newShardID := user.ShardID
	if Router.RequiresMigration(user.Country, newCountry) {
		newShardID = Router.MigrateUser(ctx, userID, user.Country, newCountry)
		ShardStatsInstance.TrackUserMigrated(ctx, user.ShardID, newShardID)
	}

	err = db.GetWriteDB(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"country":  newCountry,
			"shard_id": newShardID,
		}).Error
	if err != nil {
		return "", fmt.Errorf("failed to persist country change: %w", err)
	}

	return newShardID, nil
}

// SearchUsers ищет анкеты по имени в пределах одного гео-шарда.
// Пустой countryCode уходит в дефолтный регион - политика выбора
// дефолта принадлежит роутеру, не хендлерам.
func (us *UserService) SearchUsers(ctx context.Context, firstName, lastName, countryCode string, limit, offset int) ([]models.User, error) {
	region := Router.RouteSearchQuery(countryCode)

	var users []models.User
	query := db.GetReadOnlyDB(ctx).Model(&models.User{}).Where("shard_id = ?", region.ShardID)

	if firstName != "" {
		query = query.Where("first_name LIKE ?", firstName+"%")
	}
	if lastName != "" {
		query = query.Where("last_name LIKE ?", lastName+"%")
	}

	err := query.Order("id").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser возвращает анкету по id
func (us *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := db.GetReadOnlyDB(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
