// api/middleware/validate_test.go
package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pulsecollective/pulse/api/middleware"
)

func validatedRouter(rules ...middleware.Rule) (*gin.Engine, *map[string]any) {
	seen := map[string]any{}
	r := gin.New()
	r.POST("/subscribe", middleware.Validate(rules...), func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		for k, v := range body {
			seen[k] = v
		}
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r, &seen
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) []middleware.FieldError {
	t.Helper()
	var resp struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    []middleware.FieldError `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	return resp.Data
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	r, _ := validatedRouter(
		middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
		middleware.Rule{Field: "name", In: middleware.InBody, Type: middleware.TypeString, Required: true, MinLen: 2},
		middleware.Rule{Field: "age", In: middleware.InBody, Type: middleware.TypeInt, Min: floatPtr(18)},
	)

	w := postJSON(r, `{"email":"nope","name":"x","age":12}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	violations := fieldErrors(t, w)
	assert.Len(t, violations, 3)
	fields := []string{violations[0].Field, violations[1].Field, violations[2].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "age")
}

func floatPtr(v float64) *float64 { return &v }

func TestValidate_MissingRequiredField(t *testing.T) {
	r, _ := validatedRouter(
		middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
	)

	w := postJSON(r, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	violations := fieldErrors(t, w)
	assert.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)
	assert.Contains(t, violations[0].Message, "required")
}

func TestValidate_EmptyStringCountsAsMissing(t *testing.T) {
	r, _ := validatedRouter(
		middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
	)

	w := postJSON(r, `{"email":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	violations := fieldErrors(t, w)
	assert.Contains(t, violations[0].Message, "required")
}

func TestValidate_NormalizesEmail(t *testing.T) {
	r, seen := validatedRouter(
		middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
	)

	w := postJSON(r, `{"email":"  DJ@Pulse.NET "}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "dj@pulse.net", (*seen)["email"])
}

func TestValidate_OptionalFieldSkippedWhenAbsent(t *testing.T) {
	r, _ := validatedRouter(
		middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
		middleware.Rule{Field: "link", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
	)

	w := postJSON(r, `{"email":"dj@pulse.net"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestValidate_Enum(t *testing.T) {
	r, _ := validatedRouter(
		middleware.Rule{Field: "type", In: middleware.InBody, Type: middleware.TypeString, Required: true, Enum: []string{"mix", "article", "event"}},
	)

	assert.Equal(t, http.StatusCreated, postJSON(r, `{"type":"mix"}`).Code)

	w := postJSON(r, `{"type":"podcast"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidate_Formats(t *testing.T) {
	r, _ := validatedRouter(
		middleware.Rule{Field: "link", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
		middleware.Rule{Field: "productId", In: middleware.InBody, Type: middleware.TypeString, Format: "uuid"},
		middleware.Rule{Field: "startsAt", In: middleware.InBody, Type: middleware.TypeString, Format: "datetime"},
	)

	ok := `{"link":"https://pulse.net/mix","productId":"5f0c2a0e-76f4-4f9e-9a39-0db4b7a3b111","startsAt":"2026-06-01T20:00:00Z"}`
	assert.Equal(t, http.StatusCreated, postJSON(r, ok).Code)

	bad := `{"link":"not a url","productId":"123","startsAt":"tomorrow"}`
	w := postJSON(r, bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, fieldErrors(t, w), 3)
}

func TestValidate_MalformedJSON(t *testing.T) {
	r, _ := validatedRouter(
		middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true},
	)

	w := postJSON(r, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid JSON")
}

func TestValidate_QueryRules(t *testing.T) {
	r := gin.New()
	r.GET("/events", middleware.Validate(
		middleware.Rule{Field: "upcoming", In: middleware.InQuery, Type: middleware.TypeBool},
	), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/events?upcoming=true", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/events?upcoming=maybe", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
