package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gamenight/backend/internal/database"
	"gamenight/backend/internal/hub"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type ChatMessageInput struct {
	Content string `json:"content" binding:"required" example:"who's bringing the dice trays?"`
}

type ChatMessageResponse struct {
	ID           uint      `json:"id"`
	AuthorID     uint      `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar,omitempty"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	IsEdited     bool      `json:"is_edited"`
}

func newChatMessageResponse(msg models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:           msg.ID,
		AuthorID:     msg.GuestID,
		AuthorName:   msg.AuthorName,
		AuthorAvatar: msg.AuthorAvatar,
		Content:      msg.Content,
		CreatedAt:    msg.CreatedAt,
		IsEdited:     msg.IsEdited,
	}
}

// endregion

// PostChatMessage godoc
// @Summary      Post a chat message
// @Description  Appends a message to the event's planning chat. Any resolved guest (host included) may post; content must be non-empty after trimming.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int              true  "Event ID"
// @Param        token query string           false "Invite token for anonymous guests"
// @Param        input body  ChatMessageInput true  "Message"
// @Success      201 {object} ChatMessageResponse
// @Failure      400 {object} ErrorResponse "Empty message"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/chat [post]
func PostChatMessage(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	actor, ok := resolveGuest(c, event)
	if !ok {
		return
	}

	var input ChatMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	// Author attribution is denormalized onto the message so the log renders
	// without joins, the way the chat panel reads it.
	var avatar string
	if actor.UserID != nil {
		var user models.User
		if err := database.DB.First(&user, *actor.UserID).Error; err == nil {
			avatar = user.AvatarURL
		}
	}

	msg := models.ChatMessage{
		EventID:      event.ID,
		GuestID:      actor.ID,
		AuthorName:   actor.DisplayName(),
		AuthorAvatar: avatar,
		Content:      content,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}

	response := newChatMessageResponse(msg)
	hub.GlobalHub.Broadcast(event.ID, hub.Message{Type: hub.TypeChatMessage, Payload: response})

	c.JSON(http.StatusCreated, response)
}

// ListChatMessages godoc
// @Summary      List chat messages
// @Description  Returns the event's chat log ordered by (created_at, id) ascending. since_id returns only messages newer than the given message, for poll-based clients.
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int    true  "Event ID"
// @Param        token    query string false "Invite token for anonymous guests"
// @Param        since_id query int    false "Only messages with ID greater than this"
// @Success      200 {array} ChatMessageResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/chat [get]
func ListChatMessages(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := resolveGuest(c, event); !ok {
		return
	}

	query := database.DB.Where("event_id = ?", event.ID)
	if sinceID, err := strconv.Atoi(c.Query("since_id")); err == nil && sinceID > 0 {
		query = query.Where("id > ?", sinceID)
	}

	var messages []models.ChatMessage
	query.Order("created_at ASC, id ASC").Find(&messages)

	response := make([]ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, newChatMessageResponse(msg))
	}
	c.JSON(http.StatusOK, response)
}

// StreamChat godoc
// @Summary      Stream event updates (SSE)
// @Description  Server-sent event stream of chat messages, RSVP changes and vote updates for one event. Polling GET /chat remains available; the stream only changes delivery, not the append-log model.
// @Tags         chat
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id    path  int    true  "Event ID"
// @Param        token query string false "Invite token for anonymous guests"
// @Success      200 {string} string "event stream"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/chat/stream [get]
func StreamChat(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}
	if _, ok := resolveGuest(c, event); !ok {
		return
	}

	client := make(hub.Client, 16)
	hub.GlobalHub.Subscribe(event.ID, client)
	defer hub.GlobalHub.Unsubscribe(event.ID, client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case messageBytes, open := <-client:
			if !open {
				return false
			}
			c.SSEvent("message", string(messageBytes))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
