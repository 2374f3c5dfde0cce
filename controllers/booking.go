package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"beauty-parlor-backend/config"
	"beauty-parlor-backend/models"
	"beauty-parlor-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	ServiceID       string `json:"service_id" binding:"required"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:MM
	Address         string `json:"address" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// NewBooking returns the services that can be booked, i.e. the home
// services (the booking form's dropdown).
func NewBooking(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_home_service = ?", true).
		Order("name").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateBooking books a home service for the authenticated user. The
// total amount is backfilled from the service price on create.
func CreateBooking(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateTimeOfDay(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Selected service is not available")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	if !service.IsHomeService {
		utils.RespondWithError(c, http.StatusBadRequest, "Selected service is not available for home booking")
		return
	}

	booking := models.Booking{
		UserID:          &userID,
		ServiceID:       service.ID,
		Date:            date,
		Time:            input.Time,
		Address:         input.Address,
		IsHomeService:   true,
		SpecialRequests: input.SpecialRequests,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Booking request submitted successfully! Booking ID: %s", booking.ID),
		"booking": booking,
	})
}

// MyBookings lists the requesting user's bookings, most recent first.
func MyBookings(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Service").Preload("Review").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// findOwnedBooking fetches a booking scoped to (id, owner). A booking that
// exists but belongs to another user is reported as not found.
func findOwnedBooking(c *gin.Context, userID uuid.UUID) (*models.Booking, bool) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return nil, false
	}

	var booking models.Booking
	if err := config.DB.Preload("Service").Preload("Review").
		Where("id = ? AND user_id = ?", bookingUUID, userID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &booking, true
}

func GetBooking(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	booking, ok := findOwnedBooking(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking transitions a pending booking to cancelled. Any other
// status is rejected without a state change.
func CancelBooking(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	booking, ok := findOwnedBooking(c, userID)
	if !ok {
		return
	}

	if !booking.CanCancel() {
		utils.RespondWithError(c, http.StatusConflict, "This booking cannot be cancelled.")
		return
	}

	if err := config.DB.Model(booking).
		Update("status", models.BookingStatusCancelled).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully!",
		"booking": booking,
	})
}

// CreateReview attaches a review to one of the user's bookings. A second
// submission is an explicit conflict, the unique index on booking_id
// backs this up when two submissions race.
func CreateReview(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	booking, ok := findOwnedBooking(c, userID)
	if !ok {
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.Review
	if err := config.DB.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "You have already reviewed this booking")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	review := models.Review{
		UserID:    userID,
		BookingID: booking.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "You have already reviewed this booking")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit review")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted successfully!",
		"review":  review,
	})
}
