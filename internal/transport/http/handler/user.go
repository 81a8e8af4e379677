package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goblog-api/internal/app"
	"goblog-api/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type SignUpRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=64"`
	Email string `json:"email" binding:"required,email,max=128"`
}

var signUpMessages = map[string]string{
	"Name.required":  "Please Input a Name",
	"Name.min":       "Minimum 3 characters required!",
	"Email.required": "Please input an email address!",
	"Email.email":    "Invalid email address!",
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err, signUpMessages)
		return
	}

	user, err := h.userService.SignUp(app.SignUpInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Message(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrUserExists):
			response.Message(c, http.StatusConflict, "Email or name already exists.")
		default:
			response.Message(c, http.StatusInternalServerError, "Failed to sign up user.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statusCode": "00",
		"message":    "Sign-up successful",
		"data": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"accessToken": user.AccessToken,
		},
	})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		response.MessageWithError(c, http.StatusInternalServerError, "Failed to retrieve users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserPosts(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	posts, err := h.userService.GetUserPosts(uint(userID))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrUserNotFound):
			response.Message(c, http.StatusNotFound, "User not found")
		default:
			response.MessageWithError(c, http.StatusInternalServerError, "Failed to retrieve user posts", err)
		}
		return
	}

	c.JSON(http.StatusOK, posts)
}
