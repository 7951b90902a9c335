package db

import (
	"github.com/srimandev/taskmate/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateDeviceToken(userID uint, deviceToken string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("device_token", deviceToken).Error
}

// ListWithoutFriend returns every user with no current friend, excluding
// the given caller, in creation order.
func (repo *UserRepository) ListWithoutFriend(excludingUserID uint) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("friend_id IS NULL AND id <> ?", excludingUserID).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) ListByIDs(userIDs []uint) ([]models.User, error) {
	users := make([]models.User, 0, len(userIDs))
	if len(userIDs) == 0 {
		return users, nil
	}
	if err := repo.database.Where("id IN ?", userIDs).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SavePair persists both users inside a single transaction. Friendship
// mutations touch two records and must not be torn by a crash in between.
func (repo *UserRepository) SavePair(first *models.User, second *models.User) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(first).Error; err != nil {
			return err
		}
		return tx.Save(second).Error
	})
}
