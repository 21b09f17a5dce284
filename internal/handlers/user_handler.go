package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/luxstay/internal/models"
	"github.com/joshua-takyi/luxstay/internal/services"
)

// CreateUser is the admin variant of registration: the role is assignable
// and no session token is issued.
func CreateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username    string `json:"username" binding:"required"`
			Email       string `json:"email" binding:"required,email"`
			Password    string `json:"password" binding:"required,min=6"`
			FirstName   string `json:"firstName"`
			LastName    string `json:"lastName"`
			PhoneNumber string `json:"phoneNumber"`
			Role        string `json:"role" binding:"omitempty,oneof=admin user"`
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
			Role:        req.Role,
		}

		created, err := u.CreateUser(c.Request.Context(), user)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrUsernameTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, created.Summary())
	}
}

func ListUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := u.ListUsers(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		summaries := make([]models.UserSummary, 0, len(users))
		for _, user := range users {
			summaries = append(summaries, user.Summary())
		}
		c.JSON(http.StatusOK, summaries)
	}
}

func UpdateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID format"})
			return
		}

		var req struct {
			Username  *string `json:"username"`
			Email     *string `json:"email"`
			FirstName *string `json:"firstName"`
			LastName  *string `json:"lastName"`
			Role      *string `json:"role" binding:"omitempty,oneof=admin user"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		fields := map[string]interface{}{}
		if req.Username != nil {
			fields["username"] = *req.Username
		}
		if req.Email != nil {
			fields["email"] = *req.Email
		}
		if req.FirstName != nil {
			fields["firstName"] = *req.FirstName
		}
		if req.LastName != nil {
			fields["lastName"] = *req.LastName
		}
		if req.Role != nil {
			fields["role"] = *req.Role
		}

		updated, err := u.UpdateUser(c.Request.Context(), id, fields)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoFields):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates"})
			case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, updated.Summary())
	}
}

func DeleteUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := objectIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID format"})
			return
		}

		if err := u.DeleteUser(c.Request.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrLastAdmin):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete the last admin user"})
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
