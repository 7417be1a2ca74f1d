package dto

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quoteInput exercises the tags used by the request types.
type quoteInput struct {
	Text     string `json:"text"     validate:"required,notempty,max=40"`
	Author   string `json:"author"   validate:"required,notempty"`
	Category string `json:"category" validate:"omitempty,oneof=wisdom humor"`
	Weight   int    `json:"weight"   validate:"gte=0,lte=10"`
}

// reservedAuthor adds a business rule on top of the tags.
type reservedAuthor struct {
	Author string `json:"author" validate:"required"`
}

func (r *reservedAuthor) Validate() error {
	if strings.EqualFold(r.Author, "anonymous") {
		return errors.New("author: anonymous quotes are not accepted")
	}

	return nil
}

func TestValidator_Singleton(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      quoteInput
		wantFields []string
	}{
		{
			name:  "valid",
			input: quoteInput{Text: "Know thyself.", Author: "Socrates", Category: "wisdom", Weight: 3},
		},
		{
			name:       "missing text and author",
			input:      quoteInput{},
			wantFields: []string{"text", "author"},
		},
		{
			name:       "blank author",
			input:      quoteInput{Text: "Know thyself.", Author: " \t"},
			wantFields: []string{"author"},
		},
		{
			name:       "unknown category and heavy weight",
			input:      quoteInput{Text: "x", Author: "y", Category: "poetry", Weight: 11},
			wantFields: []string{"category", "weight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.True(t, IsValidationError(err))

			fields := ValidationErrors(err)
			assert.Len(t, fields, len(tt.wantFields))

			for _, f := range tt.wantFields {
				assert.NotEmpty(t, fields[f], "missing message for %s", f)
			}
		})
	}

	t.Run("plain errors have no field messages", func(t *testing.T) {
		assert.Empty(t, ValidationErrors(errors.New("boom")))
		assert.False(t, IsValidationError(nil))
	})
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name          string
		input         any
		wantErr       bool
		wantFieldErrs bool
	}{
		{name: "passes tags and rule", input: &reservedAuthor{Author: "Seneca"}},
		{name: "fails tags", input: &reservedAuthor{}, wantErr: true, wantFieldErrs: true},
		{name: "fails rule", input: &reservedAuthor{Author: "Anonymous"}, wantErr: true},
		{name: "no rule to run", input: &quoteInput{Text: "a", Author: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAll(tt.input)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.wantFieldErrs, IsValidationError(err))
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid", body: `{"text":"Know thyself.","author":"Socrates"}`},
		{name: "malformed json", body: `{"text":`, wantErr: ErrBinding},
		{name: "wrong type", body: `{"text":"a","author":"b","weight":"heavy"}`, wantErr: ErrBinding},
		{name: "fails validation", body: `{"text":"","author":"Socrates"}`, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var input quoteInput
			err := BindAndValidate(c, &input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Socrates", input.Author)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	type messages struct {
		Text     string `json:"text"     validate:"required"`
		Author   string `json:"author"   validate:"notempty"`
		Shown    string `json:"shown"    validate:"oneof=shown unshown"`
		Query    string `json:"q"        validate:"min=3"`
		Count    int    `json:"count"    validate:"max=50"`
		Limit    int    `json:"limit"    validate:"gte=1"`
		Page     int    `json:"page"     validate:"lt=10"`
		Category string `json:"category" validate:"max=5"`
	}

	err := Validator().Struct(&messages{Author: "  ", Shown: "maybe", Query: "ab", Count: 51, Page: 10, Category: "philosophy"})
	require.Error(t, err)

	want := map[string]string{
		"text":     "this field is required",
		"author":   "must not be empty",
		"shown":    "must be one of: shown unshown",
		"q":        "must be at least 3 characters",
		"count":    "must be at most 50",
		"limit":    "must be greater than or equal to 1",
		"page":     "must be less than 10",
		"category": "must be at most 5 characters",
	}

	assert.Equal(t, want, ValidationErrors(err))
}

func TestMinMaxMessage(t *testing.T) {
	assert.Equal(t, "must be at least 1 characters", minMaxMessage("min", "1", reflect.String))
	assert.Equal(t, "must be at most 200", minMaxMessage("max", "200", reflect.Int))
	assert.Equal(t, "must be at least 0.5", minMaxMessage("min", "0.5", reflect.Float64))
}

func TestValidationMessage_UnknownTag(t *testing.T) {
	type tagged struct {
		Emoji string `validate:"single_rune"`
	}

	v := validator.New()
	require.NoError(t, v.RegisterValidation("single_rune", func(fl validator.FieldLevel) bool {
		return len([]rune(fl.Field().String())) == 1
	}))

	err := v.Struct(&tagged{Emoji: "🦉🦉"})

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "failed validation: single_rune", validationMessage(fieldErrs[0]))
}
