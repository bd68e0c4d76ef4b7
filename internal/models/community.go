package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one coach exchange: the user's message and the AI reply.
type ChatMessage struct {
	ID        string    `json:"id" gorm:"primary_key"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
}

// NewChatMessage records an exchange timestamped now.
func NewChatMessage(userID, message, response string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}
}

// Notification kinds.
const (
	NotificationReminder   = "reminder"
	NotificationMotivation = "motivation"
	NotificationAlert      = "alert"
)

// Notification is an in-app message for a user.
type Notification struct {
	ID        string    `json:"id" gorm:"primary_key"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification creates an unread notification.
func NewNotification(userID, title, message, kind string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: time.Now().UTC(),
	}
}

// ForumReply is a threaded reply stored inline on its post.
type ForumReply struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ReplyList is the JSON-encoded reply thread.
type ReplyList []ForumReply

func (l ReplyList) Value() (driver.Value, error) { return jsonValue([]ForumReply(l)) }
func (l *ReplyList) Scan(src interface{}) error  { return jsonScan(src, l) }

// ForumPost is a community post.
type ForumPost struct {
	ID        string    `json:"id" gorm:"primary_key"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category" gorm:"index"`
	Likes     int       `json:"likes"`
	Replies   ReplyList `json:"replies" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewForumPost creates a post with no likes or replies yet.
func NewForumPost(userID, title, content, category string) *ForumPost {
	return &ForumPost{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Category:  category,
		Replies:   ReplyList{},
		CreatedAt: time.Now().UTC(),
	}
}
