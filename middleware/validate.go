// api/middleware/validate.go

package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/pulsecollective/pulse/api/util"
)

type Location string

const (
	InBody  Location = "body"
	InQuery Location = "query"
	InPath  Location = "path"
)

type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeNumber FieldType = "number"
	TypeBool   FieldType = "bool"
	TypeArray  FieldType = "array"
	TypeObject FieldType = "object"
)

// Rule is one declarative field constraint. Routes declare an ordered rule
// list at startup; the gate evaluates every rule and reports all violations
// together instead of stopping at the first.
type Rule struct {
	Field    string
	In       Location
	Type     FieldType
	Required bool
	Format   string // email, url, uuid or datetime
	Enum     []string
	MinLen   int
	MaxLen   int
	Min      *float64
	Max      *float64
	// Normalizations applied before the handler reads the value.
	Trim      bool
	Lowercase bool
}

// FieldError is one violation in the validation response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = validator.New()

// Validate evaluates the route's rules against the request. Body rules parse
// the JSON body once; normalized values are written back so handlers bind the
// cleaned payload.
func Validate(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		var bodyDirty bool

		if needsBody(rules) {
			raw, err := io.ReadAll(c.Request.Body)
			if err == nil && len(bytes.TrimSpace(raw)) > 0 {
				if err := json.Unmarshal(raw, &body); err != nil {
					util.RespondWithFieldErrors(c, http.StatusBadRequest, "Validation failed",
						[]FieldError{{Field: "body", Message: "must be valid JSON"}})
					c.Abort()
					return
				}
			}
			// Restore for handlers that bind the body themselves.
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		}

		var violations []FieldError
		for _, rule := range rules {
			value, present := lookup(c, body, rule)
			if !present {
				if rule.Required {
					violations = append(violations, FieldError{
						Field:   rule.Field,
						Message: fmt.Sprintf("%s is required", rule.Field),
					})
				}
				continue
			}

			if normalized, changed := normalize(value, rule); changed {
				value = normalized
				if rule.In == InBody {
					body[rule.Field] = normalized
					bodyDirty = true
				}
			}

			if msg := check(value, rule); msg != "" {
				violations = append(violations, FieldError{Field: rule.Field, Message: msg})
			}
		}

		if len(violations) > 0 {
			util.RespondWithFieldErrors(c, http.StatusBadRequest, "Validation failed", violations)
			c.Abort()
			return
		}

		if bodyDirty {
			raw, err := json.Marshal(body)
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewReader(raw))
				c.Request.ContentLength = int64(len(raw))
			}
		}

		c.Next()
	}
}

func needsBody(rules []Rule) bool {
	for _, r := range rules {
		if r.In == InBody {
			return true
		}
	}
	return false
}

func lookup(c *gin.Context, body map[string]any, rule Rule) (any, bool) {
	switch rule.In {
	case InQuery:
		val, ok := c.GetQuery(rule.Field)
		return val, ok
	case InPath:
		val := c.Param(rule.Field)
		return val, val != ""
	default:
		if body == nil {
			return nil, false
		}
		val, ok := body[rule.Field]
		if !ok || val == nil {
			return nil, false
		}
		// An empty string counts as absent for required checks.
		if s, isStr := val.(string); isStr && strings.TrimSpace(s) == "" {
			return nil, false
		}
		return val, true
	}
}

func normalize(value any, rule Rule) (any, bool) {
	s, ok := value.(string)
	if !ok {
		return value, false
	}
	orig := s
	if rule.Trim || rule.Format == "email" {
		s = strings.TrimSpace(s)
	}
	if rule.Lowercase || rule.Format == "email" {
		s = strings.ToLower(s)
	}
	return s, s != orig
}

// check returns an empty string when the value satisfies the rule.
func check(value any, rule Rule) string {
	switch rule.Type {
	case TypeInt:
		switch v := value.(type) {
		case float64:
			if v != float64(int64(v)) {
				return fmt.Sprintf("%s must be an integer", rule.Field)
			}
			return checkRange(v, rule)
		case string:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil || n != float64(int64(n)) {
				return fmt.Sprintf("%s must be an integer", rule.Field)
			}
			return checkRange(n, rule)
		default:
			return fmt.Sprintf("%s must be an integer", rule.Field)
		}
	case TypeNumber:
		switch v := value.(type) {
		case float64:
			return checkRange(v, rule)
		case string:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Sprintf("%s must be a number", rule.Field)
			}
			return checkRange(n, rule)
		default:
			return fmt.Sprintf("%s must be a number", rule.Field)
		}
	case TypeBool:
		switch v := value.(type) {
		case bool:
			return ""
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Sprintf("%s must be a boolean", rule.Field)
			}
			return ""
		default:
			return fmt.Sprintf("%s must be a boolean", rule.Field)
		}
	case TypeArray:
		if _, ok := value.([]any); !ok {
			return fmt.Sprintf("%s must be an array", rule.Field)
		}
		return ""
	case TypeObject:
		if _, ok := value.(map[string]any); !ok {
			return fmt.Sprintf("%s must be an object", rule.Field)
		}
		return ""
	default:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s must be a string", rule.Field)
		}
		return checkString(s, rule)
	}
}

func checkRange(n float64, rule Rule) string {
	if rule.Min != nil && n < *rule.Min {
		return fmt.Sprintf("%s must be at least %v", rule.Field, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Sprintf("%s must be at most %v", rule.Field, *rule.Max)
	}
	return ""
}

func checkString(s string, rule Rule) string {
	if rule.MinLen > 0 && len(s) < rule.MinLen {
		return fmt.Sprintf("%s must be at least %d characters", rule.Field, rule.MinLen)
	}
	if rule.MaxLen > 0 && len(s) > rule.MaxLen {
		return fmt.Sprintf("%s must be at most %d characters", rule.Field, rule.MaxLen)
	}

	switch rule.Format {
	case "email":
		if err := validate.Var(s, "email"); err != nil {
			return fmt.Sprintf("%s must be a valid email address", rule.Field)
		}
	case "url":
		if err := validate.Var(s, "url"); err != nil {
			return fmt.Sprintf("%s must be a valid URL", rule.Field)
		}
	case "uuid":
		if err := validate.Var(s, "uuid"); err != nil {
			return fmt.Sprintf("%s must be a valid UUID", rule.Field)
		}
	case "datetime":
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return fmt.Sprintf("%s must be an ISO-8601 datetime", rule.Field)
		}
	}

	if len(rule.Enum) > 0 {
		for _, allowed := range rule.Enum {
			if s == allowed {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", rule.Field, strings.Join(rule.Enum, ", "))
	}
	return ""
}
