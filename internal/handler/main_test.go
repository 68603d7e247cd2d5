package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamenight/backend/internal/auth"
	"gamenight/backend/internal/config"
	"gamenight/backend/internal/database"
	"gamenight/backend/internal/models"
	"gamenight/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeSender records sends and can be told to fail, standing in for the SMTP
// relay in tests.
type fakeSender struct {
	fail bool
	sent []string
}

func (f *fakeSender) Send(to, subject, body string) error {
	if f.fail {
		return errors.New("relay refused the message")
	}
	f.sent = append(f.sent, to)
	return nil
}

// setupTest wires an isolated in-memory database and a router with the same
// route table as main.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		JWTSecret:     "test-secret",
		PublicBaseURL: "http://localhost:3000",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	Mailer = nil
	ChaosManager = nil

	router := gin.New()
	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("/me", GetMe)

	inviteRoutes := apiV1.Group("/invites")
	inviteRoutes.GET("/:token", GetInvite)
	inviteRoutes.POST("/:token/respond", RespondInvite)

	eventRoutes := apiV1.Group("/events")
	eventRoutes.Use(auth.OptionalAuthMiddleware())
	eventRoutes.POST("", auth.AuthMiddleware(), CreateEvent)
	eventRoutes.GET("", auth.AuthMiddleware(), ListEvents)
	eventRoutes.GET("/:id", GetEvent)
	eventRoutes.PATCH("/:id", UpdateEvent)
	eventRoutes.POST("/:id/status", SetEventStatus)
	eventRoutes.PUT("/:id/house-rules", UpdateHouseRules)
	eventRoutes.POST("/:id/guests", AddGuest)
	eventRoutes.POST("/:id/guests/:guestID/resend", ResendInvite)
	eventRoutes.PUT("/:id/guests/:guestID/bringing", SetBringing)
	eventRoutes.POST("/:id/lineup", AddLineupEntry)
	eventRoutes.DELETE("/:id/lineup/:entryID", DeleteLineupEntry)
	eventRoutes.POST("/:id/lineup/:entryID/vote", CastVote)
	eventRoutes.POST("/:id/lineup/:entryID/outcome", RecordOutcome)
	eventRoutes.GET("/:id/snacks", GetSnackRoster)
	eventRoutes.POST("/:id/moments", CreateMoment)
	eventRoutes.GET("/:id/moments", ListMoments)
	eventRoutes.POST("/:id/chat", PostChatMessage)
	eventRoutes.GET("/:id/chat", ListChatMessages)
	eventRoutes.GET("/:id/suggestions", GetSuggestions)
	eventRoutes.POST("/:id/chaos", StartChaosSession)
	eventRoutes.GET("/:id/chaos", GetChaosSession)

	return router
}

// createUser registers a user directly and returns their bearer token.
func createUser(t *testing.T, nickname string) (models.User, string) {
	t.Helper()
	user := models.User{
		Nickname:     nickname,
		Email:        nickname + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

// createEvent inserts an event plus its implicit host guest row.
func createEvent(t *testing.T, host models.User, title string) (models.Event, models.Guest) {
	t.Helper()
	event := models.Event{
		HostID:    host.ID,
		Title:     title,
		Vibe:      models.VibeChill,
		MaxGuests: 8,
		Status:    models.StatusPlanning,
	}
	require.NoError(t, database.DB.Create(&event).Error)

	hostGuest := models.Guest{
		EventID:     event.ID,
		UserID:      &host.ID,
		GuestName:   host.Nickname,
		GuestEmail:  host.Email,
		Status:      models.GuestStatusIn,
		Role:        models.RoleHost,
		InviteToken: uuid.NewString(),
	}
	require.NoError(t, database.DB.Create(&hostGuest).Error)
	return event, hostGuest
}

// addGuest inserts a plain invitee row.
func addGuest(t *testing.T, event models.Event, name string) models.Guest {
	t.Helper()
	guest := models.Guest{
		EventID:     event.ID,
		GuestName:   name,
		Status:      models.GuestStatusPending,
		Role:        models.RoleGuest,
		InviteToken: uuid.NewString(),
	}
	require.NoError(t, database.DB.Create(&guest).Error)
	return guest
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
