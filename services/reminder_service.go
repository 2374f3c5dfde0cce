// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"beauty-parlor-backend/models"
	"beauty-parlor-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// smsSender abstracts the outbound SMS channel so reminder processing can
// be exercised without a live Twilio account.
type smsSender interface {
	Send(to, body string) error
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func (s *twilioSender) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}

// ReminderService texts customers the day before a confirmed home visit.
type ReminderService struct {
	db     *gorm.DB
	sender smsSender
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		sender: &twilioSender{
			client: twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: accountSid,
				Password: authToken,
			}),
			from: os.Getenv("TWILIO_FROM_NUMBER"),
		},
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.SendBookingReminders)

	c.Start()
	log.Println("Booking reminder scheduler started")
}

// SendBookingReminders texts every confirmed booking scheduled for
// tomorrow that has not been reminded yet.
func (s *ReminderService) SendBookingReminders() {
	log.Println("Starting daily booking reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var bookings []models.Booking
	if err := s.db.Preload("Service").Preload("User.Profile").
		Where("status = ? AND date = ?", models.BookingStatusConfirmed, tomorrow).
		Find(&bookings).Error; err != nil {
		log.Printf("Failed to load bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if booking.Service == nil || booking.User == nil ||
			booking.User.Profile == nil || booking.User.Profile.Phone == "" {
			continue
		}

		var already int64
		s.db.Model(&models.ReminderLog{}).
			Where("booking_id = ? AND status = ?", booking.ID, "sent").
			Count(&already)
		if already > 0 {
			continue
		}

		phone := booking.User.Profile.Phone
		message := fmt.Sprintf(
			"Hi %s, a reminder from Roshni Beauty Parlor: your %s appointment is tomorrow at %s. See you then!",
			booking.User.FirstName, booking.Service.Name, booking.Time,
		)

		logEntry := models.ReminderLog{
			BookingID: booking.ID,
			Phone:     phone,
			Message:   message,
			Status:    "sent",
			SentAt:    time.Now(),
		}

		if err := s.sender.Send(phone, message); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.ID, err)
			logEntry.Status = "failed"
			logEntry.ErrorMessage = err.Error()
		}

		if err := s.db.Create(&logEntry).Error; err != nil {
			log.Printf("Failed to record reminder for booking %s: %v", booking.ID, err)
		}
	}

	log.Printf("Booking reminder processing finished, %d bookings checked", len(bookings))
}
