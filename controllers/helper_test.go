package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"beauty-parlor-backend/config"
	"beauty-parlor-backend/models"
	"beauty-parlor-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the real router against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Service{},
		&models.Testimonial{},
		&models.Contact{},
		&models.Booking{},
		&models.Review{},
		&models.ReminderLog{},
	))
	config.DB = db

	return routes.SetupRouter()
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser signs up a user through the API and returns the session token.
func registerUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(r, "POST", "/register", "", gin.H{
		"username":   username,
		"password":   "s3cret-pass",
		"email":      username + "@example.com",
		"first_name": "Priya",
		"last_name":  "Sharma",
		"phone":      "+919876543210",
		"address":    "12 MG Road, Pune",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func seedService(t *testing.T, name string, category models.ServiceCategory, price float64, homeService bool) models.Service {
	t.Helper()
	service := models.Service{
		Name:          name,
		Description:   name + " treatment",
		Price:         price,
		Category:      category,
		IsHomeService: homeService,
		Duration:      60,
	}
	require.NoError(t, config.DB.Create(&service).Error)
	return service
}
