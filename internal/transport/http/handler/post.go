package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goblog-api/internal/app"
	"goblog-api/internal/transport/http/middleware"
	"goblog-api/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

var createPostMessages = map[string]string{
	"Title.required":   "Title cannot be empty",
	"Content.required": "Content cannot be empty",
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err, createPostMessages)
		return
	}

	post, err := h.postService.CreatePost(app.CreatePostInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Message(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Message(c, http.StatusNotFound, "User not found")
		default:
			response.MessageWithError(c, http.StatusInternalServerError, "Failed to create post", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"data":    post,
	})
}

func (h *PostHandler) GetPostComments(c *gin.Context) {
	// A non-numeric path segment parses to zero and falls through to the
	// not-found lookup, matching the legacy contract for this route.
	postID, _ := strconv.Atoi(c.Param("postId"))

	comments, err := h.postService.GetPostComments(uint(postID))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrPostNotFound):
			response.Message(c, http.StatusNotFound, "Post not found")
		default:
			response.MessageWithError(c, http.StatusInternalServerError, "Failed to retrieve post comments", err)
		}
		return
	}

	c.JSON(http.StatusOK, comments)
}

func getUserIDFromContext(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	return userID, ok
}
