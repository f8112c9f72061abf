package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourly/internal/api/controllers"
	"tourly/internal/config"
	"tourly/internal/infra/infratest"
	"tourly/internal/repositories"
	"tourly/internal/services"
	"tourly/pkg/auth"
	mem "tourly/pkg/memcache"
	"tourly/pkg/media"
	"tourly/pkg/utils"
)

const (
	adminEmail    = "admin@tourly.test"
	adminPassword = "admin-password"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

type stubUploader struct {
	mu sync.Mutex
	n  int
}

func (s *stubUploader) Upload(_ context.Context, filename string, r io.Reader) (media.Asset, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return media.Asset{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return media.Asset{URL: "https://media.example.com/" + filename, PublicID: fmt.Sprintf("tourly/%d", s.n), Width: 1200, Height: 800}, nil
}

func (s *stubUploader) Delete(context.Context, string) error { return nil }

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := infratest.NewTestDatabase(t)
	session := config.SessionConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		Issuer:     "tourly-test",
		TTL:        time.Hour,
		CookieName: "tourly_session",
	}
	server := config.ServerConfig{
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		RateLimitPerMinute: 6000,
		RateLimitBurst:     100,
		LoginPath:          "/login",
	}

	uploads := config.UploadConfig{Folder: "tourly-test", MaxFileBytes: 16 << 10}

	tokens := auth.TokenConfig{SigningKey: []byte(session.Secret), Issuer: session.Issuer, TTL: session.TTL}
	revoked := mem.NewRevokedSessions()

	categoryRepo := repositories.NewCategoryRepository(db)
	attractionRepo := repositories.NewAttractionRepository(db)
	hotelRepo := repositories.NewHotelRepository(db)
	destinationRepo := repositories.NewDestinationRepository(db)

	accounts := services.NewAccountService(repositories.NewAccountRepository(db), tokens, revoked)
	require.NoError(t, accounts.SeedAdmin(context.Background(), "Admin", adminEmail, adminPassword))

	engine := NewRouter(RouterParams{
		Server:       server,
		Session:      session,
		Logger:       zap.NewNop(),
		Resolver:     auth.NewResolver(tokens, session.CookieName, revoked),
		Accounts:     controllers.NewAccountController(accounts, session),
		Categories:   controllers.NewCategoryController(services.NewCategoryService(categoryRepo)),
		Attractions:  controllers.NewAttractionController(services.NewAttractionService(attractionRepo, categoryRepo)),
		Hotels:       controllers.NewHotelController(services.NewHotelService(hotelRepo, destinationRepo)),
		Destinations: controllers.NewDestinationController(services.NewDestinationService(destinationRepo)),
		Reviews:      controllers.NewReviewController(services.NewReviewService(repositories.NewReviewRepository(db), hotelRepo, attractionRepo)),
		Uploads:      controllers.NewUploadController(services.NewUploadService(&stubUploader{}, uploads.MaxFileBytes), uploads),
		Dashboard:    controllers.NewDashboardController(services.NewDashboardService(repositories.NewDashboardRepository(db))),
		Health:       controllers.NewHealthController(db),
	})
	return &testServer{t: t, engine: engine}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.do(req)
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	w := s.json(http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Token
}

func (s *testServer) register(name, email, password string) string {
	s.t.Helper()
	w := s.json(http.MethodPost, "/auth/register", "", map[string]string{"name": name, "email": email, "password": password})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return s.login(email, password)
}

func (s *testServer) upload(token string, n int) *httptest.ResponseRecorder {
	s.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for i := 0; i < n; i++ {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="img%d.png"`, i))
		h.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(h)
		require.NoError(s.t, err)
		_, err = part.Write(pngBytes)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, mw.WriteField("caption", "gallery"))
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.do(req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestCategories_CreateTwiceIsRejected(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(adminEmail, adminPassword)

	w := s.json(http.MethodPost, "/attraction-categories", admin, map[string]string{"name": "Beach"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "Beach", created["name"])
	assert.Contains(t, created, "description")
	assert.Nil(t, created["description"])
	assert.Contains(t, created, "color")
	assert.Nil(t, created["color"])
	assert.NotEmpty(t, created["id"])

	w = s.json(http.MethodPost, "/attraction-categories", admin, map[string]string{"name": "Beach"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.MsgCategoryExists, decode(t, w)["error"])

	w = s.json(http.MethodGet, "/attraction-categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.EqualValues(t, 0, list[0]["attractionCount"])
}

func TestCategories_WritesNeedAdmin(t *testing.T) {
	s := newTestServer(t)
	user := s.register("Kofi", "kofi@example.com", "kofi-password")

	w := s.json(http.MethodPost, "/attraction-categories", "", map[string]string{"name": "Beach"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(utils.KindUnauthenticated), decode(t, w)["code"])

	w = s.json(http.MethodPost, "/attraction-categories", user, map[string]string{"name": "Beach"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(utils.KindForbidden), decode(t, w)["code"])

	w = s.json(http.MethodGet, "/attraction-categories", "", nil)
	assert.Empty(t, decodeList(t, w))
}

func TestAttractions_AvailableSlotsDefault(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(adminEmail, adminPassword)

	w := s.json(http.MethodPost, "/attractions", admin, map[string]interface{}{"name": "Kakum", "maxVisitors": 50})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.EqualValues(t, 50, created["availableSlots"])

	w = s.json(http.MethodGet, "/attractions/"+created["id"].(string), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kakum", decode(t, w)["name"])

	w = s.json(http.MethodGet, "/attractions/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_FileCounts(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(adminEmail, adminPassword)

	w := s.upload(admin, 0)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.upload(admin, 6)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for n := 1; n <= 5; n++ {
		w = s.upload(admin, n)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		images := decodeList(t, w)
		require.Len(t, images, n)
		assert.Equal(t, "https://media.example.com/img0.png", images[0]["url"])
		assert.NotEmpty(t, images[0]["publicId"])
	}

	w = s.upload("", 1)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpload_BodyIsBounded(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(adminEmail, adminPassword)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("files", "huge.png")
	require.NoError(t, err)
	_, err = part.Write(pngBytes)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0}, 1<<20))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+admin)
	w := s.do(req)

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "Upload exceeds the size limit", decode(t, w)["error"])
	assert.Equal(t, "files", decode(t, w)["field"])
}

func TestUserReviews_RequiresSession(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodGet, "/user/reviews", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decode(t, w)["error"])
}

func TestUserReviews_OnlyCallersReviews(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(adminEmail, adminPassword)
	alice := s.register("Alice", "alice@example.com", "alice-password")
	bob := s.register("Bob", "bob@example.com", "bob-password")

	w := s.json(http.MethodPost, "/hotels", admin, map[string]interface{}{"name": "Labadi", "totalRooms": 10})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	hotelID := decode(t, w)["id"]

	w = s.json(http.MethodPost, "/reviews", alice, map[string]interface{}{"hotelId": hotelID, "rating": 5, "comment": "Great"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.json(http.MethodPost, "/reviews", bob, map[string]interface{}{"hotelId": hotelID, "rating": 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.json(http.MethodPost, "/reviews", bob, map[string]interface{}{"rating": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.json(http.MethodGet, "/user/reviews", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviews := decodeList(t, w)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Great", reviews[0]["comment"])
	hotel, ok := reviews[0]["hotel"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Labadi", hotel["name"])
}

func TestSessionCookieLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.register("Esi", "esi@example.com", "esi-password")

	w := s.json(http.MethodPost, "/auth/login", "", map[string]string{"email": "esi@example.com", "password": "esi-password"})
	require.Equal(t, http.StatusOK, w.Code)
	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "tourly_session" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)

	me := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	me.AddCookie(sessionCookie)
	w = s.do(me)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["authenticated"])
	account, ok := body["account"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "esi@example.com", account["email"])

	logout := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logout.AddCookie(sessionCookie)
	w = s.do(logout)
	require.Equal(t, http.StatusNoContent, w.Code)

	me = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	me.AddCookie(sessionCookie)
	w = s.do(me)
	assert.Equal(t, false, decode(t, w)["authenticated"])
	assert.Equal(t, "guest", decode(t, w)["role"])

	w = s.json(http.MethodPost, "/auth/login", "", map[string]string{"email": "esi@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, utils.MsgBadCredentials, decode(t, w)["error"])
}

func TestGatedRoutes(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Accept", "text/html")
	w := s.do(req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login?next="))

	w = s.json(http.MethodGet, "/checkout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := s.register("Yaw", "yaw@example.com", "yaw-password")
	w = s.json(http.MethodGet, "/checkout", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", decode(t, w)["role"])

	w = s.json(http.MethodGet, "/admin/summary", user, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(utils.KindForbidden), decode(t, w)["code"])

	admin := s.login(adminEmail, adminPassword)
	w = s.json(http.MethodGet, "/admin/summary", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	totals := decode(t, w)["totals"].(map[string]interface{})
	assert.EqualValues(t, 2, totals["accounts"])
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func names(t *testing.T, w *httptest.ResponseRecorder, key string) []string {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out []string
	for _, item := range decodeList(t, w) {
		if key == "" {
			out = append(out, item["name"].(string))
			continue
		}
		nested, ok := item[key].(map[string]interface{})
		require.True(t, ok)
		out = append(out, nested["name"].(string))
	}
	return out
}

func TestListings_NewestFirst(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(adminEmail, adminPassword)
	user := s.register("Abena", "abena@example.com", "abena-password")

	for _, name := range []string{"A", "B", "C"} {
		w := s.json(http.MethodPost, "/attractions", admin, map[string]interface{}{"name": name})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = s.json(http.MethodPost, "/hotels", admin, map[string]interface{}{"name": name, "totalRooms": 4})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		hotelID := decode(t, w)["id"]

		w = s.json(http.MethodPost, "/reviews", user, map[string]interface{}{"hotelId": hotelID, "rating": 4})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		time.Sleep(2 * time.Millisecond)
	}

	assert.Equal(t, []string{"C", "B", "A"}, names(t, s.json(http.MethodGet, "/attractions", "", nil), ""))
	assert.Equal(t, []string{"C", "B", "A"}, names(t, s.json(http.MethodGet, "/hotels", "", nil), ""))
	assert.Equal(t, []string{"C", "B", "A"}, names(t, s.json(http.MethodGet, "/user/reviews", user, nil), "hotel"))
}
