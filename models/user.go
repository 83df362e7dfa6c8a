package models

import (
	"errors"
	"regexp"
)

var (
	ErrRegisterUserMissingProperty    = errors.New("REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrRegisterUserInvalidType        = errors.New("REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrRegisterUserUsernameLimit      = errors.New("REGISTER_USER.USERNAME_LIMIT_CHAR")
	ErrRegisterUserUsernameRestricted = errors.New("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	ErrUserLoginMissingProperty       = errors.New("USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrUserLoginInvalidType           = errors.New("USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

var usernamePattern = regexp.MustCompile(`^\w+$`)

// User is the storage row for a user account.
type User struct {
	ID         string `json:"id" db:"id"`
	Username   string `json:"username" db:"username"`
	Password   string `json:"-" db:"password"`
	Fullname   string `json:"fullname" db:"fullname"`
	Created_At string `json:"createdAt" db:"created_at"`
	Updated_At string `json:"updatedAt" db:"updated_at"`
}

// RegisterUser is the validated signup payload. Password is expected to be
// hashed by the caller before persistence.
type RegisterUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

func NewRegisterUser(username, password, fullname string) (RegisterUser, error) {
	if username == "" || password == "" || fullname == "" {
		return RegisterUser{}, ErrRegisterUserMissingProperty
	}
	if len(username) > 50 {
		return RegisterUser{}, ErrRegisterUserUsernameLimit
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, ErrRegisterUserUsernameRestricted
	}
	return RegisterUser{Username: username, Password: password, Fullname: fullname}, nil
}

// RegisteredUser is the projection returned after signup.
type RegisteredUser struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Fullname string `json:"fullname" db:"fullname"`
}

// UserLogin is the validated login payload.
type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewUserLogin(username, password string) (UserLogin, error) {
	if username == "" || password == "" {
		return UserLogin{}, ErrUserLoginMissingProperty
	}
	return UserLogin{Username: username, Password: password}, nil
}
