package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/stores"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		DefaultLevel:    slog.LevelError + 1,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)

	repo := persistence.NewRepository(
		content.BucketDepartments,
		content.DefaultDepartments,
		bucket.NewMemoryStore(),
		stores.NewCollectionStore(),
		messaging.NewBroadcaster(logger),
		nil,
		logger,
	)
	service := services.NewDepartmentService(repo)
	handlers := NewCollectionHandlers("departments", service, logger, performance.NewTracker(nil))

	r := gin.New()
	api := r.Group("/api/v1/content")
	// No auth middleware in tests; the admin gate is covered separately.
	handlers.Register(api, api)
	return r
}

func TestGetAllReturnsSeededDefaults(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/departments", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []content.Department `json:"items"`
		Count int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, len(content.DefaultDepartments()), body.Count)
	require.Equal(t, content.DefaultDepartments(), body.Items)
}

func TestCreateReturnsAssignedID(t *testing.T) {
	r := newTestRouter(t)

	payload, _ := json.Marshal(content.Department{
		Title:       "Languages",
		Description: "Bangla and English language teaching.",
		Icon:        "book-open",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/departments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created content.Department
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Languages", created.Title)
}

func TestCreateWithUnknownIconFallsBack(t *testing.T) {
	r := newTestRouter(t)

	payload, _ := json.Marshal(content.Department{
		Title:       "Astronomy",
		Description: "Stargazing club curriculum.",
		Icon:        "telescope-deluxe",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/departments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created content.Department
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, content.FallbackIcon, created.Icon)
}

func TestCreateInvalidBodyRejected(t *testing.T) {
	r := newTestRouter(t)

	// Missing title fails domain validation.
	payload, _ := json.Marshal(content.Department{Description: "No title"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/departments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetByIDNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/departments/no-such-id", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/content/departments/seed-dept-science", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/content/departments/seed-dept-science?confirm=true", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/content/departments/seed-dept-science", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPerfLogRecordsElapsedDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logDir := t.TempDir()

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:  true,
		LogDirectory:  logDir,
		JSONFormat:    true,
		DefaultLevel:  slog.LevelInfo,
		ChannelLevels: map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)

	repo := persistence.NewRepository(
		content.BucketDepartments,
		content.DefaultDepartments,
		bucket.NewMemoryStore(),
		stores.NewCollectionStore(),
		messaging.NewBroadcaster(logger),
		nil,
		logger,
	)
	h := NewCollectionHandlers("departments", services.NewDepartmentService(repo), logger, performance.NewTracker(nil))

	r := gin.New()
	api := r.Group("/api/v1/content")
	h.Register(api, api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/departments", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := os.ReadFile(filepath.Join(logDir, "performance.log"))
	require.NoError(t, err)

	// The perf channel must record the elapsed request time, never zero.
	var logged bool
	for _, line := range bytes.Split(raw, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var record struct {
			Msg      string  `json:"msg"`
			Duration float64 `json:"duration"`
		}
		require.NoError(t, json.Unmarshal(line, &record))
		if record.Msg == "Performance for GetAll request" {
			logged = true
			require.Greater(t, record.Duration, float64(0))
		}
	}
	require.True(t, logged, "perf channel recorded nothing for the request")
}

func TestUpdateBodyIDMustMatchPath(t *testing.T) {
	r := newTestRouter(t)

	payload, _ := json.Marshal(content.Department{
		ID:          "different-id",
		Title:       "Science",
		Description: "Renamed",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/content/departments/seed-dept-science", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
