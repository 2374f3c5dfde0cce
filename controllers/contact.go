package controllers

import (
	"net/http"

	"beauty-parlor-backend/config"
	"beauty-parlor-backend/models"
	"beauty-parlor-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact persists a message from the public contact form. No
// duplicate detection, no rate limiting.
func SubmitContact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your message has been sent successfully!",
		"contact": gin.H{"id": contact.ID},
	})
}
