package service

import (
	"FileHaven/internal/apperr"
	"FileHaven/internal/repo"
	"FileHaven/model"
	"FileHaven/utils"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Register validates uniqueness, hashes the password and persists the user.
func Register(username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, apperr.ErrInvalidInput
	}

	hash, err := utils.HashPwd(password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		UserName: username,
		Email:    email,
		Password: hash,
	}
	if err := repo.Db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, classifyDuplicateUser(username)
		}
		return nil, err
	}
	return &user, nil
}

// classifyDuplicateUser decides which unique constraint was hit. The insert
// already failed, so whichever value exists now is the offender.
func classifyDuplicateUser(username string) error {
	var count int64
	if err := repo.Db.Model(&model.User{}).Where("user_name = ?", username).Count(&count).Error; err == nil && count > 0 {
		return apperr.ErrDuplicateUsername
	}
	return apperr.ErrDuplicateEmail
}

// Verify looks up a user by email and checks the password.
func Verify(email, password string) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if !utils.CheckPwd(password, user.Password) {
		return nil, apperr.ErrBadPassword
	}
	return &user, nil
}

// FindUserByUsername returns a user by username.
func FindUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("user_name = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserNameById returns a username by ID.
func FindUserNameById(userId uint64) (string, error) {
	var user model.User
	if err := repo.Db.Where("id = ?", userId).First(&user).Error; err != nil {
		return "", err
	}
	return user.UserName, nil
}
