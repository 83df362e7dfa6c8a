package controllers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/ForumLoop/apperrors"
	"github.com/ForumLoop/models"
	"github.com/ForumLoop/repositories"
)

// UserController carries the auth glue: signup, login, token refresh and
// logout. Password hashing and JWT issuance live here rather than in the
// use-case layer.
type UserController struct {
	users repositories.UserRepository
	auths repositories.AuthenticationRepository
}

func NewUserController(users repositories.UserRepository, auths repositories.AuthenticationRepository) *UserController {
	return &UserController{users: users, auths: auths}
}

func createToken(userID, envKey string, ttl time.Duration) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(ttl).Unix(),
	}).SignedString([]byte(os.Getenv(envKey)))
}

// UserSignup handles POST /users.
func (uc *UserController) UserSignup(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Fullname string `json:"fullname"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err, models.ErrRegisterUserInvalidType)
		return
	}

	register, err := models.NewRegisterUser(body.Username, body.Password, body.Fullname)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uc.users.VerifyAvailableUsername(c.Request.Context(), register.Username); err != nil {
		respondError(c, err)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(register.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}
	register.Password = string(passwordHash)

	registered, err := uc.users.AddUser(c.Request.Context(), register)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    registered,
	})
}

// UserLogin handles POST /authentications.
func (uc *UserController) UserLogin(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err, models.ErrUserLoginInvalidType)
		return
	}

	login, err := models.NewUserLogin(body.Username, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := uc.users.GetUserByUsername(c.Request.Context(), login.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		respondError(c, apperrors.NewAuthenticationError("username or password is wrong"))
		return
	}

	accessToken, err := createToken(user.ID, "ACCESS_TOKEN_KEY", time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}
	refreshToken, err := createToken(user.ID, "REFRESH_TOKEN_KEY", 7*24*time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := uc.auths.AddToken(c.Request.Context(), refreshToken); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// RefreshToken handles PUT /authentications. A registered, unexpired
// refresh token buys a fresh access token.
func (uc *UserController) RefreshToken(c *gin.Context) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		return
	}

	if err := uc.auths.CheckToken(c.Request.Context(), body.RefreshToken); err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.Parse(body.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("REFRESH_TOKEN_KEY")), nil
	})
	if err != nil || !token.Valid {
		respondError(c, apperrors.NewAuthenticationError("refresh token is invalid"))
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		respondError(c, apperrors.NewAuthenticationError("refresh token is invalid"))
		return
	}
	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		respondError(c, apperrors.NewAuthenticationError("refresh token is invalid"))
		return
	}

	accessToken, err := createToken(userID, "ACCESS_TOKEN_KEY", time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// UserLogout handles DELETE /authentications, revoking the refresh token.
func (uc *UserController) UserLogout(c *gin.Context) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		return
	}

	if err := uc.auths.CheckToken(c.Request.Context(), body.RefreshToken); err != nil {
		respondError(c, err)
		return
	}
	if err := uc.auths.DeleteToken(c.Request.Context(), body.RefreshToken); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
