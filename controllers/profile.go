package controllers

import (
	"net/http"
	"time"

	"beauty-parlor-backend/config"
	"beauty-parlor-backend/models"
	"beauty-parlor-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
}

// GetProfile fetches-or-creates the profile for the current user.
func GetProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var profile models.UserProfile
	if err := config.DB.Where(models.UserProfile{UserID: userID}).
		FirstOrCreate(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile edits phone, address and date of birth. Fields left out of
// the payload are untouched.
func UpdateProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var profile models.UserProfile
	if err := config.DB.Where(models.UserProfile{UserID: userID}).
		FirstOrCreate(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		profile.Phone = *input.Phone
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date of birth, expected YYYY-MM-DD")
			return
		}
		profile.DateOfBirth = &dob
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"profile": profile,
	})
}

// UploadProfilePicture stores the uploaded image under the profile_pics
// folder and saves the hosted URL on the profile.
func UploadProfilePicture(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	header, err := c.FormFile("picture")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No picture provided")
		return
	}
	if !utils.ValidateImageFile(header) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid picture: jpg, png or webp up to 5MB")
		return
	}

	var profile models.UserProfile
	if err := config.DB.Where(models.UserProfile{UserID: userID}).
		FirstOrCreate(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	url, err := utils.UploadImage(c.Request.Context(), header, "profile_pics")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload picture")
		return
	}

	if err := config.DB.Model(&profile).Update("profile_picture", url).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Profile picture updated successfully!",
		"profilePicture": url,
	})
}
