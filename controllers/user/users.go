package usercontrollers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type UserPreferenceBody struct {
	ReceiveEmail bool `json:"receiveEmail"`
}

type CreateUserRequest struct {
	Email          string             `json:"email" binding:"required,email"`
	FirstName      string             `json:"firstName" binding:"required"`
	LastName       string             `json:"lastName" binding:"required"`
	Address        string             `json:"address"`
	UserPreference UserPreferenceBody `json:"userPreference"`
}

type PatchUserRequest struct {
	Email          *string `json:"email" binding:"omitempty,email"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Address        *string `json:"address"`
	UserPreference *struct {
		ReceiveEmail *bool `json:"receiveEmail"`
	} `json:"userPreference"`
}

// -------- Handlers --------

func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		var orderClause string
		switch c.DefaultQuery("order", "newest") {
		case "oldest":
			orderClause = "created_at ASC"
		default: // newest
			orderClause = "created_at DESC"
		}

		var users []models.User
		if err := db.
			Preload("UserPreference").
			Order(orderClause).
			Offset(offset).
			Limit(limit).
			Find(&users).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.
			Preload("UserPreference").
			Preload("SavedProducts").
			First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation("%s", err.Error()))
			return
		}

		user := models.User{
			ID:        uuid.NewString(),
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
			UserPreference: &models.UserPreference{
				ReceiveEmail: req.UserPreference.ReceiveEmail,
			},
		}
		if err := db.Create(&user).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PatchUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation("%s", err.Error()))
			return
		}

		var user models.User
		if err := db.
			Preload("UserPreference").
			First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}

		// Partial merge: only supplied fields change.
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.Address != nil {
			user.Address = *req.Address
		}
		if req.UserPreference != nil && req.UserPreference.ReceiveEmail != nil && user.UserPreference != nil {
			user.UserPreference.ReceiveEmail = *req.UserPreference.ReceiveEmail
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
				"email":      user.Email,
				"first_name": user.FirstName,
				"last_name":  user.LastName,
				"address":    user.Address,
			}).Error; err != nil {
				return err
			}
			if user.UserPreference == nil {
				return nil
			}
			return tx.Model(&models.UserPreference{}).
				Where("user_id = ?", user.ID).
				Update("receive_email", user.UserPreference.ReceiveEmail).Error
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Delete(&models.User{}, "id = ?", id)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("user %s not found", id)
			}
			if err := tx.Where("user_id = ?", id).
				Delete(&models.UserPreference{}).Error; err != nil {
				return err
			}
			return tx.Exec("DELETE FROM user_saved_products WHERE user_id = ?", id).Error
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
