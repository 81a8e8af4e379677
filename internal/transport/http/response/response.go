package response

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Body shapes follow the legacy contract: plain {message} for expected
// failures, {message, error} for unexpected ones, {errors: [...]} for
// validation rejections.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func MessageWithError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{"message": message, "error": err.Error()})
}

// ValidationFailed translates a binding error into the legacy errors array.
// messages maps "<StructField>.<tag>" to the message for that rule.
func ValidationFailed(c *gin.Context, err error, messages map[string]string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Message(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		fields = append(fields, FieldError{Field: lowerFirst(fe.Field()), Message: msg})
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
