package service

import (
	"FileTransfer/internal/repo"
	"FileTransfer/model"
	"FileTransfer/utils"
	"errors"
)

// CreateUser stores a new account with a hashed password.
func CreateUser(user *model.User) error {
	user.Password = utils.GetPwd(user.Password)
	return repo.Db.Create(user).Error
}

// IsExist returns the user with the given username.
func IsExist(username string) (*model.User, error) {
	var user model.User
	err := repo.Db.Where("user_name = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// IsEmailExist reports whether an account uses the email.
func IsEmailExist(email string) error {
	var user model.User
	return repo.Db.Where("email = ?", email).First(&user).Error
}

// CheckPassword verifies a username/password pair.
func CheckPassword(username, password string) error {
	user, err := IsExist(username)
	if err != nil {
		return err
	}
	if !utils.CheckPwd(password, user.Password) {
		return errors.New("password mismatch")
	}
	return nil
}

// FindUsersByEmails resolves email addresses to accounts. Unknown
// addresses are skipped.
func FindUsersByEmails(emails []string) ([]model.User, error) {
	var users []model.User
	if len(emails) == 0 {
		return users, nil
	}
	err := repo.Db.Where("email IN ?", emails).Find(&users).Error
	return users, err
}
