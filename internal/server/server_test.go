package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/voicepost/internal/aigen"
	"github.com/smallbiznis/voicepost/internal/assets"
	businessservice "github.com/smallbiznis/voicepost/internal/business/service"
	"github.com/smallbiznis/voicepost/internal/clock"
	"github.com/smallbiznis/voicepost/internal/config"
	imageservice "github.com/smallbiznis/voicepost/internal/imagegen/service"
	"github.com/smallbiznis/voicepost/internal/migration"
	"github.com/smallbiznis/voicepost/internal/observability/metrics"
	"github.com/smallbiznis/voicepost/internal/poster/raster"
	reviewservice "github.com/smallbiznis/voicepost/internal/review/service"
	surveyservice "github.com/smallbiznis/voicepost/internal/survey/service"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	log := zap.NewNop()
	if err := migration.Run(db, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	cfg := config.Config{
		Environment:        "test",
		AITimeout:          time.Second,
		MaxUploadSize:      5 << 20,
		UploadDir:          t.TempDir(),
		UploadBaseURL:      "/uploads",
		GenerateRateLimit:  100,
		GenerateRateWindow: time.Minute,
	}

	fontPath := filepath.Join(t.TempDir(), "test.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font fixture: %v", err)
	}

	store := assets.NewStore(cfg, log)
	fetcher := raster.NewAssetFetcher(store, log)
	fonts := raster.NewFontSource(fontPath, "", log)
	rasterizer := raster.NewRasterizer(fonts, fetcher, log)

	businessSvc := businessservice.NewService(businessservice.ServiceParam{
		DB: db, Log: log, GenID: node, Clock: clock.SystemClock{},
	})
	surveySvc := surveyservice.NewService(surveyservice.ServiceParam{
		DB: db, Log: log, GenID: node, Clock: clock.SystemClock{},
	})
	reviewSvc := reviewservice.NewService(reviewservice.ServiceParam{
		DB: db, Log: log, Config: cfg, GenID: node, Local: aigen.Local{},
	})
	imageSvc := imageservice.NewService(imageservice.ServiceParam{
		DB: db, Log: log, Config: cfg, GenID: node,
		Rasterizer: rasterizer, Fetcher: fetcher, Store: store,
	})

	srv := NewServer(ServerParam{
		Config:      cfg,
		Log:         log,
		DB:          db,
		BusinessSvc: businessSvc,
		SurveySvc:   surveySvc,
		ReviewSvc:   reviewSvc,
		ImageSvc:    imageSvc,
		Store:       store,
	})

	httpMetrics, err := metrics.NewHTTPMetrics(metrics.Config{Environment: "test"})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	r := NewRouter(cfg, httpMetrics)
	srv.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func createBusiness(t *testing.T, r *gin.Engine, name string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/businesses", map[string]any{
		"service_name": name,
		"description":  "テスト用の説明",
		"what_you_do":  "整体の施術",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create business: status %d body %s", w.Code, w.Body.String())
	}
	return decodeBody(t, w)
}

func TestCreateBusinessReturnsAdminTokenOnce(t *testing.T) {
	r := newTestRouter(t)

	created := createBusiness(t, r, "〇〇整体")
	token, _ := created["admin_token"].(string)
	if token == "" {
		t.Fatalf("expected admin_token in create response, got %v", created)
	}
	adminURL, _ := created["admin_url"].(string)
	if adminURL != "/admin/"+token {
		t.Fatalf("admin_url = %q, want /admin/%s", adminURL, token)
	}
	if got := created["category"]; got != "その他" {
		t.Fatalf("default category = %v, want その他", got)
	}

	id, _ := created["id"].(string)
	w := doJSON(t, r, http.MethodGet, "/api/businesses/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get business: status %d", w.Code)
	}
	detail := decodeBody(t, w)
	if _, leaked := detail["admin_token"]; leaked {
		t.Fatalf("public view leaked admin_token: %v", detail)
	}
	if detail["survey"] == nil {
		t.Fatalf("expected initial survey definition in detail: %v", detail)
	}
}

func TestCreateBusinessRequiresServiceName(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/businesses", map[string]any{
		"description": "名前なし",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListBusinessesFiltersBySearch(t *testing.T) {
	r := newTestRouter(t)

	createBusiness(t, r, "ひまわり整体院")
	createBusiness(t, r, "ABC美容室")

	w := doJSON(t, r, http.MethodGet, "/api/businesses?search=整体", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	body := decodeBody(t, w)
	items, _ := body["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d businesses, want 1", len(items))
	}
	first, _ := items[0].(map[string]any)
	if first["service_name"] != "ひまわり整体院" {
		t.Fatalf("unexpected match: %v", first)
	}
}

func TestGetBusinessByAdminToken(t *testing.T) {
	r := newTestRouter(t)

	created := createBusiness(t, r, "〇〇整体")
	token, _ := created["admin_token"].(string)

	w := doJSON(t, r, http.MethodGet, "/api/businesses/"+token+"?admin=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin view: status %d body %s", w.Code, w.Body.String())
	}
	detail := decodeBody(t, w)
	if detail["admin_token"] != token {
		t.Fatalf("admin view should echo the token, got %v", detail["admin_token"])
	}
}

func TestUpdateBusinessRejectsWrongToken(t *testing.T) {
	r := newTestRouter(t)

	created := createBusiness(t, r, "〇〇整体")
	id, _ := created["id"].(string)

	w := doJSON(t, r, http.MethodPut, "/api/businesses/"+id, map[string]any{
		"admin_token": "not-the-token",
		"description": "書き換え",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestUpdateBusinessAppliesPartialFields(t *testing.T) {
	r := newTestRouter(t)

	created := createBusiness(t, r, "〇〇整体")
	id, _ := created["id"].(string)
	token, _ := created["admin_token"].(string)

	w := doJSON(t, r, http.MethodPut, "/api/businesses/"+id, map[string]any{
		"admin_token": token,
		"description": "新しい説明",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d body %s", w.Code, w.Body.String())
	}
	updated := decodeBody(t, w)
	if updated["description"] != "新しい説明" {
		t.Fatalf("description = %v", updated["description"])
	}
	if updated["service_name"] != "〇〇整体" {
		t.Fatalf("untouched field changed: %v", updated["service_name"])
	}
}

func submitSurveyResponse(t *testing.T, r *gin.Engine, businessID string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/survey-responses", map[string]any{
		"business_id": businessID,
		"answers": []map[string]any{
			{"question_id": "q1", "value": 5},
			{"question_id": "q2", "value": []string{"説明が丁寧", "技術が高い"}},
			{"question_id": "q3", "value": "肩の痛みが楽になりました"},
		},
		"free_comment": "また通いたいです",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit survey: status %d body %s", w.Code, w.Body.String())
	}
	return decodeBody(t, w)
}

func TestSurveyAndReviewFlow(t *testing.T) {
	r := newTestRouter(t)

	created := createBusiness(t, r, "〇〇整体")
	id, _ := created["id"].(string)

	w := doJSON(t, r, http.MethodGet, "/api/businesses/"+id+"/survey", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get survey: status %d", w.Code)
	}
	survey := decodeBody(t, w)
	if survey["version"] != float64(1) {
		t.Fatalf("survey version = %v, want 1", survey["version"])
	}

	submitted := submitSurveyResponse(t, r, id)
	responseID, _ := submitted["id"].(string)
	if responseID == "" {
		t.Fatalf("missing response id: %v", submitted)
	}

	w = doJSON(t, r, http.MethodPost, "/api/generate-review", map[string]any{
		"business_id":        id,
		"survey_response_id": responseID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate review: status %d body %s", w.Code, w.Body.String())
	}
	generated := decodeBody(t, w)
	copyBody, _ := generated["copy"].(map[string]any)
	if copyBody == nil {
		t.Fatalf("missing copy in response: %v", generated)
	}
	text, _ := copyBody["review_text"].(string)
	if text == "" {
		t.Fatalf("empty review text")
	}
	if copyBody["source"] != "local" {
		t.Fatalf("source = %v, want local without a configured API key", copyBody["source"])
	}
	validation, _ := generated["validation"].(map[string]any)
	if validation == nil || validation["valid"] != true {
		t.Fatalf("expected clean validation, got %v", generated["validation"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/businesses/"+id+"/reviews", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list reviews: status %d", w.Code)
	}
	listed := decodeBody(t, w)
	items, _ := listed["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d reviews, want 1", len(items))
	}
}

func TestGenerateReviewUnknownBusiness(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate-review", map[string]any{
		"business_id":        "123456789",
		"survey_response_id": "987654321",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGenerateImageValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate-image", map[string]any{
		"template_id": "tpl-000",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateImageUnknownTemplate(t *testing.T) {
	r := newTestRouter(t)

	created := createBusiness(t, r, "〇〇整体")
	id, _ := created["id"].(string)
	submitted := submitSurveyResponse(t, r, id)
	responseID, _ := submitted["id"].(string)

	w := doJSON(t, r, http.MethodPost, "/api/generate-review", map[string]any{
		"business_id":        id,
		"survey_response_id": responseID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate review: status %d", w.Code)
	}
	generated := decodeBody(t, w)
	copyBody, _ := generated["copy"].(map[string]any)
	copyID, _ := copyBody["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/generate-image", map[string]any{
		"template_id":       "tpl-404",
		"business_id":       id,
		"generated_copy_id": copyID,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", w.Code, w.Body.String())
	}
}

func TestListTemplates(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/templates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	items, _ := body["data"].([]any)
	if len(items) != 10 {
		t.Fatalf("got %d templates, want 10", len(items))
	}
}

func TestGalleryEmpty(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/gallery?limit=5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	items, _ := body["data"].([]any)
	if len(items) != 0 {
		t.Fatalf("expected empty gallery, got %v", items)
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestGenerateImageReturnsRenderedPoster(t *testing.T) {
	r := newTestRouter(t)

	created := createBusiness(t, r, "〇〇整体")
	id, _ := created["id"].(string)
	token, _ := created["admin_token"].(string)

	uploaded := uploadFile(t, r, "image/png", pngBytes(t))
	if uploaded.Code != http.StatusOK {
		t.Fatalf("upload: status %d body %s", uploaded.Code, uploaded.Body.String())
	}
	faceURL, _ := decodeBody(t, uploaded)["url"].(string)

	w := doJSON(t, r, http.MethodPut, "/api/businesses/"+id, map[string]any{
		"admin_token":       token,
		"face_url":          faceURL,
		"is_public_gallery": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update business: status %d body %s", w.Code, w.Body.String())
	}

	submitted := submitSurveyResponse(t, r, id)
	responseID, _ := submitted["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/generate-review", map[string]any{
		"business_id":        id,
		"survey_response_id": responseID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate review: status %d body %s", w.Code, w.Body.String())
	}
	copyBody, _ := decodeBody(t, w)["copy"].(map[string]any)
	copyID, _ := copyBody["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/generate-image", map[string]any{
		"template_id":       "tpl-000",
		"business_id":       id,
		"generated_copy_id": copyID,
		"size_preset":       "プレビュー",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate image: status %d body %s", w.Code, w.Body.String())
	}
	generated := decodeBody(t, w)
	imageBody, _ := generated["image"].(map[string]any)
	if imageBody == nil {
		t.Fatalf("missing image in response: %v", generated)
	}
	if imageBody["path"] != "raster" {
		t.Fatalf("path = %v, want raster", imageBody["path"])
	}
	if imageBody["width"] != float64(540) || imageBody["height"] != float64(675) {
		t.Fatalf("unexpected geometry %v x %v", imageBody["width"], imageBody["height"])
	}
	imageURL, _ := imageBody["image_url"].(string)
	if !strings.HasPrefix(imageURL, "/uploads/") {
		t.Fatalf("image_url = %q, want /uploads/ prefix", imageURL)
	}
	if got, _ := generated["generated_image_url"].(string); got != imageURL {
		t.Fatalf("generated_image_url = %q, want %q", got, imageURL)
	}

	w = doJSON(t, r, http.MethodGet, "/api/gallery", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("gallery: status %d", w.Code)
	}
	items, _ := decodeBody(t, w)["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d gallery items, want 1", len(items))
	}
	item, _ := items[0].(map[string]any)
	if item["service_name"] != "〇〇整体" {
		t.Fatalf("unexpected gallery item %v", item)
	}
}

func uploadFile(t *testing.T, r *gin.Engine, mime string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo"`)
	header.Set("Content-Type", mime)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadStoresImage(t *testing.T) {
	r := newTestRouter(t)

	w := uploadFile(t, r, "image/png", []byte("png-bytes"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	url, _ := body["url"].(string)
	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("url = %q, want /uploads/ prefix", url)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	r := newTestRouter(t)

	w := uploadFile(t, r, "text/plain", []byte("not an image"))
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGenerationLimiterWindow(t *testing.T) {
	limiter := newGenerationLimiter(2, time.Minute)

	if !limiter.Allow("1.2.3.4") || !limiter.Allow("1.2.3.4") {
		t.Fatalf("first two requests should pass")
	}
	if limiter.Allow("1.2.3.4") {
		t.Fatalf("third request in window should be rejected")
	}
	if !limiter.Allow("5.6.7.8") {
		t.Fatalf("other clients are counted separately")
	}
	if limiter.Allow("") {
		t.Fatalf("empty key must never pass")
	}
}

func TestGenerationLimiterPrunesExpiredWindows(t *testing.T) {
	limiter := newGenerationLimiter(1, 10*time.Millisecond)

	if !limiter.Allow("1.2.3.4") {
		t.Fatalf("first request should pass")
	}
	if limiter.Allow("1.2.3.4") {
		t.Fatalf("second request in window should be rejected")
	}

	time.Sleep(25 * time.Millisecond)

	if !limiter.Allow("5.6.7.8") {
		t.Fatalf("request after the window should pass")
	}
	limiter.mu.Lock()
	_, stale := limiter.windows["1.2.3.4"]
	limiter.mu.Unlock()
	if stale {
		t.Fatalf("expired window was not pruned")
	}

	if !limiter.Allow("1.2.3.4") {
		t.Fatalf("pruned client starts a fresh window")
	}
}
