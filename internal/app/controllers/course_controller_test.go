package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursecatalog/internal/app/controllers"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/repositories"
	"github.com/yigit/coursecatalog/internal/app/routes"
	"github.com/yigit/coursecatalog/internal/app/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewCourseService(repositories.NewMemoryCourseRepository(), zerolog.Nop())
	router := gin.New()
	routes.SetupRouter(router, controllers.NewCourseController(svc))
	return router
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func createCourse(t *testing.T, router http.Handler, body map[string]interface{}) dto.CourseResponse {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/courses/", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /courses/ status = %d, body = %s", rec.Code, rec.Body.String())
	}
	return decode[dto.CourseResponse](t, rec)
}

func TestCourseLifecycle(t *testing.T) {
	router := newTestRouter()

	created := createCourse(t, router, map[string]interface{}{
		"name": "Algebra", "level": "intro", "duration": 10,
	})
	if created.ID == "" {
		t.Fatal("created course has no ID")
	}
	if created.Name != "Algebra" || created.Level != "intro" || created.Duration != 10 || created.Description != nil {
		t.Fatalf("created course = %+v", created)
	}

	rec := doRequest(t, router, http.MethodGet, "/courses/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	if got := decode[dto.CourseResponse](t, rec); got != created {
		t.Fatalf("GET = %+v, want %+v", got, created)
	}

	rec = doRequest(t, router, http.MethodDelete, "/courses/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d", rec.Code)
	}
	if got := decode[dto.CourseResponse](t, rec); got.ID != created.ID {
		t.Fatalf("DELETE returned %q, want %q", got.ID, created.ID)
	}

	rec = doRequest(t, router, http.MethodGet, "/courses/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET after delete status = %d, want 404", rec.Code)
	}
	if got := decode[map[string]string](t, rec); got["detail"] != "Course not found" {
		t.Fatalf("404 body = %v", got)
	}
}

func TestListCourses(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/courses/", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
		t.Fatalf("empty list: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	names := []string{"Algebra", "Biology", "Chemistry"}
	for _, name := range names {
		createCourse(t, router, map[string]interface{}{"name": name, "level": "intro", "duration": 5})
	}

	rec = doRequest(t, router, http.MethodGet, "/courses/", nil)
	courses := decode[[]dto.CourseResponse](t, rec)
	if len(courses) != len(names) {
		t.Fatalf("list returned %d courses, want %d", len(courses), len(names))
	}
	for i, course := range courses {
		if course.Name != names[i] {
			t.Errorf("courses[%d].Name = %q, want %q", i, course.Name, names[i])
		}
	}
}

func TestCreateCourse_IgnoresBodyID(t *testing.T) {
	router := newTestRouter()

	created := createCourse(t, router, map[string]interface{}{
		"id": "client-id", "name": "Algebra", "description": "basics", "level": "intro", "duration": 0,
	})
	if created.ID == "client-id" {
		t.Fatal("server kept the client-supplied id")
	}
	if created.Description == nil || *created.Description != "basics" {
		t.Fatalf("description = %v, want basics", created.Description)
	}
	if created.Duration != 0 {
		t.Fatalf("duration = %d, want 0", created.Duration)
	}
}

func TestUpdateCourse(t *testing.T) {
	router := newTestRouter()
	created := createCourse(t, router, map[string]interface{}{"name": "Algebra", "level": "intro", "duration": 10})

	rec := doRequest(t, router, http.MethodPut, "/courses/"+created.ID, map[string]interface{}{
		"id": "other", "name": "Linear Algebra", "level": "advanced", "duration": 30,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body = %s", rec.Code, rec.Body.String())
	}
	updated := decode[dto.CourseResponse](t, rec)
	if updated.ID != created.ID {
		t.Fatalf("PUT changed id to %q", updated.ID)
	}

	rec = doRequest(t, router, http.MethodGet, "/courses/"+created.ID, nil)
	if got := decode[dto.CourseResponse](t, rec); got != updated {
		t.Fatalf("GET after PUT = %+v, want %+v", got, updated)
	}
}

func TestUnknownCourse_NotFound(t *testing.T) {
	router := newTestRouter()
	body := map[string]interface{}{"name": "Algebra", "level": "intro", "duration": 10}

	tests := []struct {
		method string
		body   interface{}
	}{
		{http.MethodGet, nil},
		{http.MethodPut, body},
		{http.MethodDelete, nil},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, "/courses/does-not-exist", tt.body)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			if got := decode[map[string]string](t, rec); got["detail"] != "Course not found" {
				t.Fatalf("body = %v", got)
			}
		})
	}
}

func TestCreateCourse_InvalidBody(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantField  string
		wantTag    string
	}{
		{"malformed json", "{not json", http.StatusBadRequest, "", ""},
		{"missing name", map[string]interface{}{"level": "intro", "duration": 1}, http.StatusUnprocessableEntity, "name", "required"},
		{"missing level", map[string]interface{}{"name": "A", "duration": 1}, http.StatusUnprocessableEntity, "level", "required"},
		{"missing duration", map[string]interface{}{"name": "A", "level": "intro"}, http.StatusUnprocessableEntity, "duration", "required"},
		{"null name", `{"name":null,"level":"intro","duration":1}`, http.StatusUnprocessableEntity, "name", "required"},
		{"name not a string", `{"name":42,"level":"intro","duration":1}`, http.StatusUnprocessableEntity, "name", "type"},
		{"duration text", `{"name":"A","level":"intro","duration":"ten"}`, http.StatusUnprocessableEntity, "duration", "type"},
		{"duration fraction", `{"name":"A","level":"intro","duration":10.5}`, http.StatusUnprocessableEntity, "duration", "type"},
		{"duration bool", `{"name":"A","level":"intro","duration":true}`, http.StatusUnprocessableEntity, "duration", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/courses/", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantField == "" {
				return
			}
			resp := decode[dto.ValidationErrorResponse](t, rec)
			if len(resp.Detail) != 1 || resp.Detail[0].Field != tt.wantField || resp.Detail[0].Tag != tt.wantTag {
				t.Fatalf("detail = %+v, want one %q error on %q", resp.Detail, tt.wantTag, tt.wantField)
			}
			if resp.Detail[0].Message == "" {
				t.Fatal("field error has no message")
			}
		})
	}

	rec := doRequest(t, router, http.MethodGet, "/courses/", nil)
	if rec.Body.String() != "[]" {
		t.Fatalf("invalid requests created courses: %s", rec.Body.String())
	}
}

func TestCreateCourse_PresenceOnly(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"empty name", map[string]interface{}{"name": "", "level": "intro", "duration": 1}},
		{"whitespace name", map[string]interface{}{"name": "   ", "level": "intro", "duration": 1}},
		{"empty level", map[string]interface{}{"name": "A", "level": "", "duration": 1}},
		{"whitespace level", map[string]interface{}{"name": "A", "level": "\t ", "duration": 1}},
		{"negative duration", map[string]interface{}{"name": "A", "level": "intro", "duration": -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := createCourse(t, router, tt.body)
			if created.Name != tt.body["name"] || created.Level != tt.body["level"] || created.Duration != tt.body["duration"] {
				t.Fatalf("created = %+v, want fields of %v", created, tt.body)
			}
		})
	}
}

func TestCreateCourse_LaxDuration(t *testing.T) {
	router := newTestRouter()

	for _, raw := range []string{`10`, `10.0`, `1e1`, `"10"`} {
		t.Run(raw, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/courses/", `{"name":"A","level":"intro","duration":`+raw+`}`)
			if rec.Code != http.StatusCreated {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if got := decode[dto.CourseResponse](t, rec); got.Duration != 10 {
				t.Fatalf("duration = %d, want 10", got.Duration)
			}
		})
	}
}

func TestUpdateCourse_InvalidBodyKeepsCourse(t *testing.T) {
	router := newTestRouter()
	created := createCourse(t, router, map[string]interface{}{"name": "Algebra", "level": "intro", "duration": 10})

	rec := doRequest(t, router, http.MethodPut, "/courses/"+created.ID, map[string]interface{}{"name": "Algebra"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("PUT status = %d, want 422", rec.Code)
	}
	if resp := decode[dto.ValidationErrorResponse](t, rec); len(resp.Detail) != 2 {
		t.Fatalf("detail = %+v, want level and duration errors", resp.Detail)
	}

	rec = doRequest(t, router, http.MethodGet, "/courses/"+created.ID, nil)
	if got := decode[dto.CourseResponse](t, rec); got != created {
		t.Fatalf("course changed by rejected PUT: %+v", got)
	}
}

func TestPing(t *testing.T) {
	router := newTestRouter()
	createCourse(t, router, map[string]interface{}{"name": "Algebra", "level": "intro", "duration": 10})

	rec := doRequest(t, router, http.MethodGet, "/ping", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[dto.HealthResponse](t, rec); got.Message != "pong" || got.Courses != 1 {
		t.Fatalf("ping = %+v", got)
	}
}
