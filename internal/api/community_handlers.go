package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vitatrack/internal/auth"
	"vitatrack/internal/models"
)

// ListNotifications returns the user's notifications, newest first.
func (s *Server) ListNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", auth.UserID(c)).
		Order("created_at desc").Limit(listLimit).Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead flags one of the user's notifications as read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	var notification models.Notification
	err := s.db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).
		First(&notification).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	notification.IsRead = true
	if err := s.db.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

type forumPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// ListForumPosts returns community posts, newest first, optionally by category.
func (s *Server) ListForumPosts(c *gin.Context) {
	query := s.db.Model(&models.ForumPost{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var posts []models.ForumPost
	if err := query.Order("created_at desc").Limit(listLimit).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreateForumPost publishes a community post.
func (s *Server) CreateForumPost(c *gin.Context) {
	var req forumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.NewForumPost(auth.UserID(c), req.Title, req.Content, req.Category)
	if err := s.db.Create(post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// LikeForumPost increments a post's like counter.
func (s *Server) LikeForumPost(c *gin.Context) {
	var post models.ForumPost
	if err := s.db.Where("id = ?", c.Param("id")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	post.Likes++
	if err := s.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post liked", "likes": post.Likes})
}

type forumReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

// ReplyForumPost appends a reply to a post's thread.
func (s *Server) ReplyForumPost(c *gin.Context) {
	var req forumReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.ForumPost
	if err := s.db.Where("id = ?", c.Param("id")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	reply := models.ForumReply{
		ID:        uuid.New().String(),
		UserID:    auth.UserID(c),
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	post.Replies = append(post.Replies, reply)
	if err := s.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save reply"})
		return
	}
	c.JSON(http.StatusCreated, reply)
}
