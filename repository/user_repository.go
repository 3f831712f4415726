package repository

import (
	"github.com/wbonfim/DeliveryApp/entity"

	"gorm.io/gorm"
)

// UserRepository owns all access to the users and addresses tables.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail resolves the login identifier either way.
func (r *UserRepository) FindByUsernameOrEmail(identifier string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

// ---------------- Addresses ----------------

func (r *UserRepository) ListAddresses(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("is_default DESC, id").Find(&out).Error
	return out, err
}

func (r *UserRepository) GetAddress(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAddress inserts the address; when it is flagged default, the user's
// previous default is demoted in the same transaction.
func (r *UserRepository) CreateAddress(a *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := clearDefaultAddress(tx, a.UserID); err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
}

func (r *UserRepository) SaveAddress(a *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := clearDefaultAddress(tx, a.UserID); err != nil {
				return err
			}
		}
		return tx.Save(a).Error
	})
}

func (r *UserRepository) DeleteAddress(userID, addressID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&entity.Address{}).Error
}

func clearDefaultAddress(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
