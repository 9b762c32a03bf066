package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/yigit/coursecatalog/internal/app/models"
)

// CourseRequest represents the body of course create and update requests.
// An "id" field in the body is not bound; identifiers come from the server.
// Pointer fields make "required" mean present, so empty strings and any
// integer duration are accepted.
type CourseRequest struct {
	Name        *string `json:"name" binding:"required" example:"Algebra"`
	Description *string `json:"description" example:"Linear equations and polynomials"`
	Level       *string `json:"level" binding:"required" example:"intro"`
	Duration    *Hours  `json:"duration" binding:"required" swaggertype:"integer" example:"10"`
}

// Hours is a whole number of hours. It also decodes integral floats such
// as 10.0 and numeric strings such as "10".
type Hours int

// UnmarshalJSON implements json.Unmarshaler
func (h *Hours) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return hoursTypeError("string")
		}
		text = unquoted
	} else if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return hoursTypeError(jsonKind(raw))
	}

	if n, err := strconv.ParseInt(text, 10, strconv.IntSize); err == nil {
		*h = Hours(n)
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt || f < math.MinInt {
		return hoursTypeError("number " + text)
	}
	*h = Hours(f)
	return nil
}

// hoursTypeError reports a value that cannot be read as whole hours
func hoursTypeError(value string) error {
	return &json.UnmarshalTypeError{Value: value, Type: reflect.TypeOf(0)}
}

// jsonKind names the JSON type of a raw value for error messages
func jsonKind(raw []byte) string {
	switch {
	case len(raw) == 0:
		return "empty"
	case raw[0] == '{':
		return "object"
	case raw[0] == '[':
		return "array"
	case raw[0] == 't' || raw[0] == 'f':
		return "bool"
	default:
		return "value"
	}
}

// ToModel converts the request into a course without an ID
func (r *CourseRequest) ToModel() *models.Course {
	course := &models.Course{Description: r.Description}
	if r.Name != nil {
		course.Name = *r.Name
	}
	if r.Level != nil {
		course.Level = *r.Level
	}
	if r.Duration != nil {
		course.Duration = int(*r.Duration)
	}
	return course
}

// CourseResponse represents a course as returned by the API
type CourseResponse struct {
	ID          string  `json:"id" example:"3f1c5d0e-8f4b-4c39-9a55-1b0e7c2d9a10"`
	Name        string  `json:"name" example:"Algebra"`
	Description *string `json:"description" example:"Linear equations and polynomials"`
	Level       string  `json:"level" example:"intro"`
	Duration    int     `json:"duration" example:"10"`
}

// NewCourseResponse maps a course model onto its API representation
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		Level:       course.Level,
		Duration:    course.Duration,
	}
}

// NewCourseListResponse maps courses onto their API representation, never returning nil
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}
	return responses
}
