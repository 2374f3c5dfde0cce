// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"beauty-parlor-backend/config"
	"beauty-parlor-backend/models"
	"beauty-parlor-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const servicesPerPage = 9

// Home returns the landing page payload: a handful of home services plus
// the latest testimonials.
func Home(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_home_service = ?", true).
		Order("name").Limit(6).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	var testimonials []models.Testimonial
	if err := config.DB.Order("created_at DESC").Limit(3).Find(&testimonials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services":     services,
		"testimonials": testimonials,
	})
}

func About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Roshni Beauty Parlor",
		"tagline": "Professional beauty services at your doorstep",
		"phone":   "+911234567890",
		"email":   "hello@roshnibeauty.example",
		"hours":   "Mon-Sat 9:00-20:00, Sun 10:00-18:00",
	})
}

// searchServices applies the shared case-insensitive substring match over
// name and description.
func searchServices(query *gorm.DB, search string) *gorm.DB {
	pattern := "%" + strings.ToLower(search) + "%"
	return query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
}

// GetServices lists the catalog with optional category filter and search,
// paginated at 9 per page and ordered by name.
func GetServices(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	query := config.DB.Model(&models.Service{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = searchServices(query, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	totalPages := int((total + servicesPerPage - 1) / servicesPerPage)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var services []models.Service
	if err := query.Order("name").
		Offset((page - 1) * servicesPerPage).Limit(servicesPerPage).
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services":   services,
		"page":       page,
		"totalPages": totalPages,
		"total":      total,
		"category":   category,
		"search":     search,
	})
}

// GetService returns one service plus up to 3 related services sharing its
// category, excluding itself.
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var related []models.Service
	if err := config.DB.Where("category = ? AND id <> ?", service.Category, service.ID).
		Order("name").Limit(3).Find(&related).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service":         service,
		"relatedServices": related,
	})
}

// Recommendations filters the catalog by category substring and/or search
// text, capped at 9 results.
func Recommendations(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	query := config.DB.Model(&models.Service{})
	if category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if search != "" {
		query = searchServices(query, search)
	}

	var recommended []models.Service
	if err := query.Order("name").Limit(servicesPerPage).Find(&recommended).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve recommendations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommended": recommended,
		"category":    category,
		"search":      search,
	})
}

// GetTestimonials lists all curated testimonials, newest first.
func GetTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := config.DB.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}
