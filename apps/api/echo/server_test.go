package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/event"
	"github.com/unidubna/portal/core/news"
	"github.com/unidubna/portal/core/schedule"
	"github.com/unidubna/portal/core/user"
	"github.com/unidubna/portal/storage/filestore"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func testConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		TestMode:         true,
		AppName:          "Test Portal",
		SecretKey:        "secret",
		DefaultFromEmail: mail.Address{Address: "noreply@uni-dubna.ru"},
		Server: core.ServerConfig{
			Addr:               ":0",
			JWTExpirationDelta: 10 * time.Minute,
			ShutdownTimeout:    time.Second,
		},
	}
}

func newTestServer(t *testing.T) (*Server, *filestore.Store, *core.Config) {
	conf := testConfig()

	store, err := filestore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("newTestServer() failed: %v", err)
	}

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	server := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         nopLogger{},
		UserSvc:        user.NewService(store.Users, nil, conf),
		NewsSvc:        news.NewService(store.News),
		EventSvc:       event.NewService(store.Events),
		ScheduleSvc:    schedule.NewService(store.Schedule),
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})
	return server, store, conf
}

func getToken(t *testing.T, conf *core.Config, usr user.User) string {
	token, err := GenerateToken(GetSessionClaims(usr, conf), conf)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) bool {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		t.Errorf("jsonBytesEqual() failed: %v", err)
		return false
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		t.Errorf("jsonBytesEqual() failed: %v", err)
		return false
	}
	return reflect.DeepEqual(j1, j2)
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	if !jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData) {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func Test_authApi_register(t *testing.T) {
	server, store, _ := newTestServer(t)

	_, err := store.Users.CreateUser(user.User{Email: "taken.21@uni-dubna.ru", Password: "pwd", BaseRole: user.RoleStudent})
	if err != nil {
		t.Fatalf("seeding user failed: %v", err)
	}

	tests := []httpTest{
		{
			name:     "student registers",
			body:     []byte(`{"email":"Ivan.Petrov.21@uni-dubna.ru","password":"secret"}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"success":"registered as student, you can now sign in"}`),
		},
		{
			name:     "staff registers",
			body:     []byte(`{"email":"anna.sidorova@uni-dubna.ru","password":"secret"}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"success":"registered as staff, you can now sign in"}`),
		},
		{
			name:     "duplicate email",
			body:     []byte(`{"email":"TAKEN.21@uni-dubna.ru","password":"other"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"a user with this email is already registered"}`),
		},
		{
			name:     "foreign domain",
			body:     []byte(`{"email":"ivan.petrov.21@gmail.com","password":"secret"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"invalid email: a @uni-dubna.ru address is required"}`),
		},
		{
			name:     "missing fields",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"this field is required","password":"this field is required"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/register", "", tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_authApi_login(t *testing.T) {
	server, store, _ := newTestServer(t)

	_, err := store.Users.CreateUser(user.User{Email: "ivan.petrov.21@uni-dubna.ru", Password: "secret", BaseRole: user.RoleStudent})
	if err != nil {
		t.Fatalf("seeding user failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/login", "", []byte(`{"email":"IVAN.petrov.21@uni-dubna.ru","password":"secret"}`))
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.RoleStudent, resp.Role)

		cookies := rec.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, sessionCookieName, cookies[0].Name)
			assert.Equal(t, resp.Token, cookies[0].Value)
		}
	})

	tests := []httpTest{
		{
			name:     "wrong password",
			body:     []byte(`{"email":"ivan.petrov.21@uni-dubna.ru","password":"Secret"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid email or password"}`),
		},
		{
			name:     "unknown email",
			body:     []byte(`{"email":"nobody@uni-dubna.ru","password":"secret"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"invalid email or password"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/login", "", tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_newsApi_mutations(t *testing.T) {
	server, store, conf := newTestServer(t)

	editor := getToken(t, conf, user.User{
		Email: "e@uni-dubna.ru", BaseRole: user.RoleStaff,
		Permissions: []user.Capability{user.CapEditNews},
	})
	moderator := getToken(t, conf, user.User{
		Email: "m@uni-dubna.ru", BaseRole: user.RoleStaff,
		Permissions: []user.Capability{user.CapDeleteNews},
	})
	reader := getToken(t, conf, user.User{Email: "r.21@uni-dubna.ru", BaseRole: user.RoleStudent})

	seeded, err := store.News.AppendItem(news.Item{Title: "seeded", Category: "Мероприятие", Date: "2026-01-01"})
	if err != nil {
		t.Fatalf("seeding news failed: %v", err)
	}

	body := []byte(`{"title":"t","content":"c","category":"Стипендия"}`)
	tests := []httpTest{
		{name: "create anonymous", method: http.MethodPost, path: "/news", body: body, wantCode: http.StatusUnauthorized},
		{name: "create without capability", method: http.MethodPost, path: "/news", body: body, token: reader, wantCode: http.StatusForbidden},
		{name: "create with delete capability only", method: http.MethodPost, path: "/news", body: body, token: moderator, wantCode: http.StatusForbidden},
		{name: "create with capability", method: http.MethodPost, path: "/news", body: body, token: editor, wantCode: http.StatusCreated},
		{name: "create invalid payload", method: http.MethodPost, path: "/news", body: []byte(`{"title":"t"}`), token: editor,
			wantCode: http.StatusBadRequest, wantData: []byte(`{"content":"this field is required","category":"this field is required"}`)},
		{name: "delete without capability", method: http.MethodDelete, path: "/news/1", token: editor, wantCode: http.StatusForbidden},
		{name: "delete non-numeric id", method: http.MethodDelete, path: "/news/abc", token: moderator,
			wantCode: http.StatusBadRequest, wantData: []byte(`{"id":"id must be a number"}`)},
		{name: "delete missing id", method: http.MethodDelete, path: "/news/99", token: moderator, wantCode: http.StatusNotFound},
		{name: "delete", method: http.MethodDelete, path: "/news/1", token: moderator, wantCode: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	items, err := store.News.QueryAllItems()
	assert.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.NotEqual(t, seeded.ID, items[0].ID)
		assert.Equal(t, "t", items[0].Title)
	}
}

func Test_eventApi_mutations(t *testing.T) {
	server, _, conf := newTestServer(t)

	editor := getToken(t, conf, user.User{
		Email: "e@uni-dubna.ru", BaseRole: user.RoleStaff,
		Permissions: []user.Capability{user.CapEditEvents, user.CapDeleteEvents},
	})

	body := []byte(`{"title":"t","description":"d","location":"ауд. 1-300","date":"2026-06-01","type":"Хакатон"}`)
	tests := []httpTest{
		{name: "create", method: http.MethodPost, path: "/events", body: body, token: editor, wantCode: http.StatusCreated},
		{name: "create anonymous", method: http.MethodPost, path: "/events", body: body, wantCode: http.StatusUnauthorized},
		{name: "delete missing", method: http.MethodDelete, path: "/events/42", token: editor, wantCode: http.StatusNotFound},
		{name: "delete", method: http.MethodDelete, path: "/events/1", token: editor, wantCode: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_portalApi_gating(t *testing.T) {
	server, _, conf := newTestServer(t)

	student := getToken(t, conf, user.User{Email: "s.21@uni-dubna.ru", BaseRole: user.RoleStudent})
	staff := getToken(t, conf, user.User{Email: "a@uni-dubna.ru", BaseRole: user.RoleStaff})

	page := func(t *testing.T, token, path string) (int, map[string]interface{}, *httptest.ResponseRecorder) {
		req, rec := newAuthRequest(http.MethodGet, path, token)
		server.ServeHTTP(rec, req)
		var body map[string]interface{}
		if rec.Code == http.StatusOK {
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding page failed: %v", err)
			}
		}
		return rec.Code, body, rec
	}

	t.Run("anonymous content navigation shows login", func(t *testing.T) {
		code, body, _ := page(t, "", "/news")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "login", body["route"])
	})

	t.Run("anonymous register stays reachable", func(t *testing.T) {
		code, body, _ := page(t, "", "/register")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "register", body["route"])
	})

	t.Run("garbage token is treated as anonymous", func(t *testing.T) {
		code, body, _ := page(t, "not-a-jwt", "/news")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "login", body["route"])
	})

	t.Run("authenticated news page renders", func(t *testing.T) {
		code, body, _ := page(t, student, "/news")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "news", body["route"])
	})

	t.Run("login redirects authenticated users home", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/login", student)
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("staff services redirect students", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/services-staff", student)
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/services", rec.Header().Get("Location"))
	})

	t.Run("staff services render for staff", func(t *testing.T) {
		code, body, _ := page(t, staff, "/services-staff")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "services-staff", body["route"])
	})

	t.Run("logout clears the session cookie", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/logout", student)
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, sessionCookieName, cookies[0].Name)
			assert.Empty(t, cookies[0].Value)
		}
	})

	t.Run("unknown path renders 404 fragment", func(t *testing.T) {
		code, body, _ := page(t, student, "/no/such/page")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "not-found", body["route"])
	})
}
