package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"goblog-api/internal/app"
	"goblog-api/internal/transport/http/response"
)

type CommentHandler struct {
	commentService *app.CommentService
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,min=3"`
	PostID  uint   `json:"postId" binding:"required"`
	UserID  uint   `json:"userId" binding:"required"`
}

var addCommentMessages = map[string]string{
	"Content.required": "Content cannot be empty",
	"Content.min":      "Minimum 3 characters required!",
	"PostID.required":  "Please Input PostId",
	"UserID.required":  "Please Input userId",
}

func NewCommentHandler(commentService *app.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err, addCommentMessages)
		return
	}

	comment, err := h.commentService.AddComment(app.AddCommentInput{
		Content: req.Content,
		PostID:  req.PostID,
		UserID:  req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Message(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Message(c, http.StatusNotFound, "Post not found")
		case errors.Is(err, app.ErrUserNotFound):
			response.Message(c, http.StatusNotFound, "User not found")
		default:
			response.MessageWithError(c, http.StatusInternalServerError, "Failed to add comment", err)
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}
