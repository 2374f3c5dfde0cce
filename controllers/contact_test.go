package controllers_test

import (
	"testing"

	"beauty-parlor-backend/config"
	"beauty-parlor-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmission(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/contact", "", gin.H{
		"name":    "Asha",
		"email":   "asha@example.com",
		"phone":   "+919812345678",
		"subject": "Bridal package",
		"message": "Do you offer trial sessions?",
	})
	require.Equal(t, 201, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Your message has been sent successfully!", resp.Message)

	var count int64
	config.DB.Model(&models.Contact{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestContactRejectsInvalidEmail(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/contact", "", gin.H{
		"name":    "Asha",
		"email":   "not-an-email",
		"phone":   "+919812345678",
		"subject": "Bridal package",
		"message": "Do you offer trial sessions?",
	})
	assert.Equal(t, 400, w.Code)

	// Nothing persisted on validation failure
	var count int64
	config.DB.Model(&models.Contact{}).Count(&count)
	assert.Zero(t, count)
}
