package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterUser handles self-service signup and returns the new account with
// a fresh token.
func RegisterUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username    string `json:"username" binding:"required"`
			Email       string `json:"email" binding:"required,email"`
			Password    string `json:"password" binding:"required,min=6"`
			FirstName   string `json:"firstName"`
			LastName    string `json:"lastName"`
			PhoneNumber string `json:"phoneNumber"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := &models.User{
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
		}

		created, token, err := u.Register(c.Request.Context(), user)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrUsernameTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user":  created.Summary(),
			"token": token,
		})
	}
}

func LoginUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, token, err := u.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user.Summary(),
			"token": token,
		})
	}
}

// LogoutUser invalidates the presented token only; other sessions survive.
func LogoutUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		token := c.GetString("token")
		if err := u.Logout(c.Request.Context(), userID, token); err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

func GetProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		user, err := u.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, user.Summary())
	}
}

// UpdateProfile lets an authenticated user change their own name, phone
// number or password.
func UpdateProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		var req struct {
			FirstName   *string `json:"firstName"`
			LastName    *string `json:"lastName"`
			PhoneNumber *string `json:"phoneNumber"`
			Password    *string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		fields := map[string]interface{}{}
		if req.FirstName != nil {
			fields["firstName"] = *req.FirstName
		}
		if req.LastName != nil {
			fields["lastName"] = *req.LastName
		}
		if req.PhoneNumber != nil {
			fields["phoneNumber"] = *req.PhoneNumber
		}
		if req.Password != nil {
			fields["password"] = *req.Password
		}

		updated, err := u.UpdateProfile(c.Request.Context(), userID, fields)
		if err != nil {
			if errors.Is(err, services.ErrNoFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates"})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, updated.Summary())
	}
}
