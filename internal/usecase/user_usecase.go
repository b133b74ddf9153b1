package usecase

import (
	"fmt"
	"time"

	"absensi-sekolah-backend/config"
	"absensi-sekolah-backend/internal/model"
	"absensi-sekolah-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(nama, nip, password, role string, kelasID, siswaID *uint) (*model.User, error) {
	switch role {
	case model.RoleAdmin, model.RoleGuru, model.RolePerwakilan:
	default:
		return nil, fmt.Errorf("%w: role %q tidak dikenal", ErrValidation, role)
	}
	if role == model.RolePerwakilan && kelasID == nil {
		return nil, fmt.Errorf("%w: perwakilan wajib punya kelas", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Nama:     nama,
		NIP:      nip,
		Password: string(hashedPassword),
		Role:     role,
		KelasID:  kelasID,
		SiswaID:  siswaID,
		IsActive: true,
	}
	if err := u.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) Login(nip, password string) (string, *model.User, error) {
	user, err := u.repo.FindByNIP(nip)
	if err != nil {
		return "", nil, fmt.Errorf("%w: NIP atau password salah", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: NIP atau password salah", ErrUnauthorized)
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"nip":     user.NIP,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}
	if user.KelasID != nil {
		claims["kelas_id"] = *user.KelasID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, err
	}
	return t, user, nil
}

func (u *UserUsecase) GantiPassword(userID uint, passwordLama, passwordBaru string) error {
	user, err := u.repo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(passwordLama)); err != nil {
		return fmt.Errorf("%w: password lama salah", ErrUnauthorized)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passwordBaru), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return u.repo.Update(user)
}
