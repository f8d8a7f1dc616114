package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/core/values"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingService wraps the real service and remembers what the handlers passed in.
type recordingService struct {
	values.Service
	ids     []int64
	payload []string
}

func (r *recordingService) Get(id int64) string {
	r.ids = append(r.ids, id)
	return r.Service.Get(id)
}

func (r *recordingService) Create(value string) {
	r.payload = append(r.payload, value)
	r.Service.Create(value)
}

func (r *recordingService) Update(id int64, value string) {
	r.ids = append(r.ids, id)
	r.payload = append(r.payload, value)
	r.Service.Update(id, value)
}

func (r *recordingService) Remove(id int64) {
	r.ids = append(r.ids, id)
	r.Service.Remove(id)
}

func setupRouter(svc values.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewValues(svc)
	r.GET("/values", h.List())
	r.GET("/values/:id", h.Get())
	r.POST("/values", h.Create())
	r.PUT("/values/:id", h.Update())
	r.DELETE("/values/:id", h.Delete())
	r.GET("/", Ping())
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValues_List(t *testing.T) {
	r := setupRouter(values.New())

	w := do(r, http.MethodGet, "/values", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["value1","value2"]`, w.Body.String())
}

func TestValues_Get(t *testing.T) {
	svc := &recordingService{Service: values.New()}
	r := setupRouter(svc)

	for _, id := range []string{"42", "0", "-7", "9223372036854775807", "-9223372036854775808"} {
		w := do(r, http.MethodGet, "/values/"+id, "")

		require.Equal(t, http.StatusOK, w.Code, "id %s", id)
		var got string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "value", got)
	}
	assert.Equal(t, []int64{42, 0, -7, 9223372036854775807, -9223372036854775808}, svc.ids)
}

func TestValues_InvalidID(t *testing.T) {
	r := setupRouter(values.New())

	for _, path := range []string{"/values/abc", "/values/1.5", "/values/9223372036854775808"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := do(r, method, path, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", method, path)
			assert.Contains(t, w.Body.String(), "invalid id")
		}
	}
}

func TestValues_Create(t *testing.T) {
	svc := &recordingService{Service: values.New()}
	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/values", `"x"`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodPost, "/values", `plain text`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodPost, "/values", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, []string{"x", "plain text", ""}, svc.payload)
}

func TestValues_Update(t *testing.T) {
	svc := &recordingService{Service: values.New()}
	r := setupRouter(svc)

	w := do(r, http.MethodPut, "/values/42", `"y"`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, []int64{42}, svc.ids)
	assert.Equal(t, []string{"y"}, svc.payload)
}

func TestValues_Delete(t *testing.T) {
	svc := &recordingService{Service: values.New()}
	r := setupRouter(svc)

	w := do(r, http.MethodDelete, "/values/42", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, []int64{42}, svc.ids)
}

func TestValues_WritesLeaveReadsUnchanged(t *testing.T) {
	r := setupRouter(values.New())

	do(r, http.MethodPost, "/values", `"x"`)
	do(r, http.MethodPut, "/values/1", `"y"`)
	do(r, http.MethodDelete, "/values/1", "")

	assert.JSONEq(t, `["value1","value2"]`, do(r, http.MethodGet, "/values", "").Body.String())
	assert.JSONEq(t, `"value"`, do(r, http.MethodGet, "/values/1", "").Body.String())
}

func TestPing(t *testing.T) {
	r := setupRouter(values.New())

	w := do(r, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
