package helper

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// HTTPHelper shapes every error the API emits into the
// {"errors": {field: [messages]}} envelope.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	h := &HTTPHelper{}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	h.Translator, _ = uni.GetTranslator("en")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		h.Validate = v
		_ = entranslations.RegisterDefaultTranslations(v, h.Translator)
	}

	return h
}

// SendError sends the envelope under an arbitrary status code.
func (u *HTTPHelper) SendError(c *gin.Context, status int, errs map[string][]string) {
	c.JSON(status, gin.H{"errors": errs})
}

func (u *HTTPHelper) fieldErrors(field, message string) map[string][]string {
	return map[string][]string{field: {message}}
}

// SendBindingError translates a request-binding failure. Validation errors
// become per-field 422 messages; anything else (malformed JSON and the like)
// gets a generic body error.
func (u *HTTPHelper) SendBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorResponse := map[string][]string{}
		translations := validationErrors.Translate(u.Translator)
		for _, fieldErr := range validationErrors {
			key := Underscore(fieldErr.Field())
			errorResponse[key] = append(errorResponse[key], strings.TrimSpace(translations[fieldErr.Namespace()]))
		}
		u.SendError(c, http.StatusUnprocessableEntity, errorResponse)
		return
	}

	u.SendError(c, http.StatusUnprocessableEntity, u.fieldErrors("body", "is invalid"))
}

func (u *HTTPHelper) SendUnprocessable(c *gin.Context, field, message string) {
	u.SendError(c, http.StatusUnprocessableEntity, u.fieldErrors(field, message))
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendError(c, http.StatusUnauthorized, u.fieldErrors("token", message))
}

func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	u.SendError(c, http.StatusForbidden, u.fieldErrors("user", message))
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, resource string) {
	u.SendError(c, http.StatusNotFound, u.fieldErrors(resource, "not found"))
}

func (u *HTTPHelper) SendInternalError(c *gin.Context, err error) {
	u.SendError(c, http.StatusInternalServerError, u.fieldErrors("body", err.Error()))
}

// Underscore converts a struct field name to its snake_case wire key.
func Underscore(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
