package repository

import (
	"absensi-sekolah-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByNIP(nip string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	Update(user *model.User) error
	GetByRole(role string) ([]model.User, error)
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByNIP(nip string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Kelas").Where("nip = ? AND is_active = ?", nip, true).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Kelas").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) GetByRole(role string) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("role = ? AND is_active = ?", role, true).Order("nama asc").Find(&users).Error
	return users, err
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&model.User{}, id).Error
}
