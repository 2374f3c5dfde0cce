package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"beauty-parlor-backend/models"
	"beauty-parlor-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeSender struct {
	sent []string // "to|body"
	err  error
}

func (f *fakeSender) Send(to, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+body)
	return nil
}

func openReminderTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
		&models.ReminderLog{},
	))
	return db
}

func seedReminderBooking(t *testing.T, db *gorm.DB, username string, status models.BookingStatus, date time.Time, phone string) models.Booking {
	t.Helper()

	user := models.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "s3cret-pass",
		FirstName: "Priya",
	}
	require.NoError(t, db.Create(&user).Error)
	profile := models.UserProfile{UserID: user.ID, Phone: phone}
	require.NoError(t, db.Create(&profile).Error)

	service := models.Service{Name: "Gold Facial", Price: 1499, Category: models.CategoryFacial, IsHomeService: true}
	require.NoError(t, db.Create(&service).Error)

	booking := models.Booking{
		UserID:    &user.ID,
		ServiceID: service.ID,
		Date:      date,
		Time:      "14:30",
		Address:   "12 MG Road, Pune",
		Status:    status,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func TestSendBookingRemindersSelectsTomorrowConfirmed(t *testing.T) {
	db := openReminderTestDB(t)
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	due := seedReminderBooking(t, db, "priya", models.BookingStatusConfirmed, tomorrow, "+919876543210")
	seedReminderBooking(t, db, "nina", models.BookingStatusPending, tomorrow, "+919876543211")
	seedReminderBooking(t, db, "asha", models.BookingStatusConfirmed, utils.BeginningOfDay(time.Now()), "+919876543212")
	seedReminderBooking(t, db, "rhea", models.BookingStatusConfirmed, tomorrow.AddDate(0, 0, 1), "+919876543213")

	sender := &fakeSender{}
	svc := &ReminderService{db: db, sender: sender}
	svc.SendBookingReminders()

	require.Len(t, sender.sent, 1)
	assert.True(t, strings.HasPrefix(sender.sent[0], "+919876543210|"))
	assert.Contains(t, sender.sent[0], "Gold Facial")
	assert.Contains(t, sender.sent[0], "14:30")

	var logs []models.ReminderLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, due.ID, logs[0].BookingID)
	assert.Equal(t, "sent", logs[0].Status)
}

func TestSendBookingRemindersSkipsMissingPhone(t *testing.T) {
	db := openReminderTestDB(t)
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	seedReminderBooking(t, db, "priya", models.BookingStatusConfirmed, tomorrow, "")

	sender := &fakeSender{}
	svc := &ReminderService{db: db, sender: sender}
	svc.SendBookingReminders()

	assert.Empty(t, sender.sent)
	var count int64
	db.Model(&models.ReminderLog{}).Count(&count)
	assert.Zero(t, count)
}

func TestSendBookingRemindersDoesNotTextTwice(t *testing.T) {
	db := openReminderTestDB(t)
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	seedReminderBooking(t, db, "priya", models.BookingStatusConfirmed, tomorrow, "+919876543210")

	sender := &fakeSender{}
	svc := &ReminderService{db: db, sender: sender}
	svc.SendBookingReminders()
	svc.SendBookingReminders()

	assert.Len(t, sender.sent, 1)
	var count int64
	db.Model(&models.ReminderLog{}).Where("status = ?", "sent").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSendBookingRemindersRecordsFailureAndRetries(t *testing.T) {
	db := openReminderTestDB(t)
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	booking := seedReminderBooking(t, db, "priya", models.BookingStatusConfirmed, tomorrow, "+919876543210")

	sender := &fakeSender{err: errors.New("carrier unavailable")}
	svc := &ReminderService{db: db, sender: sender}
	svc.SendBookingReminders()

	var failed models.ReminderLog
	require.NoError(t, db.First(&failed, "booking_id = ?", booking.ID).Error)
	assert.Equal(t, "failed", failed.Status)
	assert.Equal(t, "carrier unavailable", failed.ErrorMessage)

	// A failed attempt does not block the next run
	sender.err = nil
	svc.SendBookingReminders()

	require.Len(t, sender.sent, 1)
	var count int64
	db.Model(&models.ReminderLog{}).Where("status = ?", "sent").Count(&count)
	assert.Equal(t, int64(1), count)
}
