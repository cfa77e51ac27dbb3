package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/email"
	"marketing_site/internal/services"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockSectionService struct{ mock.Mock }

func (m *MockSectionService) GetSections(ctx context.Context, sectionType, language string, admin bool) ([]models.Section, error) {
	args := m.Called(ctx, sectionType, language, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockSectionService) GetSectionByType(ctx context.Context, sectionType, language string) (*models.Section, error) {
	args := m.Called(ctx, sectionType, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Section), args.Error(1)
}

func (m *MockSectionService) GetSection(ctx context.Context, id uuid.UUID) (*models.Section, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Section), args.Error(1)
}

func (m *MockSectionService) CreateSection(ctx context.Context, section models.Section) (uuid.UUID, error) {
	args := m.Called(ctx, section)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSectionService) UpdateSection(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockSectionService) UpsertSectionContent(ctx context.Context, content models.SectionContent) error {
	return m.Called(ctx, content).Error(0)
}

func (m *MockSectionService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockArticleService struct{ mock.Mock }

func (m *MockArticleService) CreateArticle(ctx context.Context, article models.Article) (uuid.UUID, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockArticleService) GetArticle(ctx context.Context, id uuid.UUID, language string) (*models.Article, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleService) GetArticleBySlug(ctx context.Context, slug, language string) (*models.Article, error) {
	args := m.Called(ctx, slug, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleService) ListArticles(ctx context.Context, language string, admin bool) ([]models.Article, error) {
	args := m.Called(ctx, language, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleService) UpdateArticle(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *MockArticleService) UpsertArticleContent(ctx context.Context, content models.ArticleContent) error {
	return m.Called(ctx, content).Error(0)
}

func (m *MockArticleService) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockContactService struct{ mock.Mock }

func (m *MockContactService) GetContact(ctx context.Context, language string) (*models.ContactInfo, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactInfo), args.Error(1)
}

func (m *MockContactService) UpdateContact(ctx context.Context, info models.ContactInfo) (*models.ContactInfo, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactInfo), args.Error(1)
}

func (m *MockContactService) SendMessage(ctx context.Context, data email.ContactMessageData) error {
	return m.Called(ctx, data).Error(0)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Login(ctx context.Context, email, password string) (models.User, *models.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.Get(0).(models.User), nil, args.Error(2)
	}
	return args.Get(0).(models.User), args.Get(1).(*models.TokenPair), args.Error(2)
}

func (m *MockUserService) RegisterNewUser(ctx context.Context, email, name, password string) (uuid.UUID, error) {
	args := m.Called(ctx, email, name, password)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

type MockMediaService struct{ mock.Mock }

func (m *MockMediaService) Upload(ctx context.Context, field string, file *multipart.FileHeader) (*models.Media, error) {
	args := m.Called(ctx, field, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func newRouters(t *testing.T) (*Routers, *MockSectionService, *MockArticleService, *MockContactService, *MockUserService, *MockAuthService, *MockMediaService) {
	t.Helper()

	sections := new(MockSectionService)
	articles := new(MockArticleService)
	contact := new(MockContactService)
	users := new(MockUserService)
	auth := new(MockAuthService)
	media := new(MockMediaService)

	r := NewRouter(discardLogger(), sections, articles, contact, users, auth, media)

	return r, sections, articles, contact, users, auth, media
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "en", language("en"))
	assert.Equal(t, "he", language("he"))
	// Absent and unknown values both default to english.
	assert.Equal(t, "en", language(""))
	assert.Equal(t, "en", language("fr"))
}

func TestLogin_ReturnsUserAndTokenPair(t *testing.T) {
	r, _, _, _, users, _, _ := newRouters(t)

	user := models.User{ID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}
	users.On("Login", mock.Anything, "admin@example.com", "secret-pass").
		Return(user, &models.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"secret-pass"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			User         models.User `json:"user"`
			AccessToken  string      `json:"accessToken"`
			RefreshToken string      `json:"refreshToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.Data.AccessToken)
	assert.Equal(t, "r", resp.Data.RefreshToken)
	assert.Equal(t, user.ID, resp.Data.User.ID)
	// The password hash never serializes.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestLogin_BadCredentialsAreUnauthorized(t *testing.T) {
	r, _, _, _, users, _, _ := newRouters(t)

	users.On("Login", mock.Anything, "admin@example.com", "wrong-password").
		Return(models.User{}, nil, services.ErrInvalidCredentials)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong-password"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_RejectsMalformedEmail(t *testing.T) {
	r, _, _, _, users, _, _ := newRouters(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "Login")
}

func TestRefresh_RejectedTokenIsUnauthorized(t *testing.T) {
	r, _, _, _, _, auth, _ := newRouters(t)

	auth.On("RefreshTokens", mock.Anything, "dead-token").
		Return(nil, services.ErrInvalidToken)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh",
		strings.NewReader(`{"refreshToken":"dead-token"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Refresh(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	r, _, _, _, _, auth, _ := newRouters(t)

	auth.On("Logout", mock.Anything, "whatever").Return(services.ErrInvalidToken)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout",
		strings.NewReader(`{"refreshToken":"whatever"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Logout(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe_ReadsUserFromToken(t *testing.T) {
	r, _, _, _, users, _, _ := newRouters(t)

	userID := uuid.New()
	users.On("GetUserByID", mock.Anything, userID).
		Return(models.User{ID: userID, Email: "admin@example.com"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: jwt.MapClaims{
		"uid":  userID.String(),
		"role": models.RoleAdmin,
	}})

	require.NoError(t, r.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestMe_NoTokenIsUnauthorized(t *testing.T) {
	r, _, _, _, _, _, _ := newRouters(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Me(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSectionByType_NotFound(t *testing.T) {
	r, sections, _, _, _, _, _ := newRouters(t)

	sections.On("GetSectionByType", mock.Anything, "hero", "en").
		Return(nil, services.ErrSectionNotFound)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/sections/type/hero?lang=en", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("type")
	c.SetParamValues("hero")

	require.NoError(t, r.GetSectionByType(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSections_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	r, sections, _, _, _, _, _ := newRouters(t)

	sections.On("GetSections", mock.Anything, "", "en", false).
		Return([]models.Section{}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/sections?lang=fr", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, r.GetSections(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	sections.AssertExpectations(t)
}

func TestListAllSections_AdminListing(t *testing.T) {
	r, sections, _, _, _, _, _ := newRouters(t)

	draft := models.Section{Type: models.SectionTypeHero, IsPublished: false}
	sections.On("GetSections", mock.Anything, "", "", true).
		Return([]models.Section{draft}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/sections", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, r.ListAllSections(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isPublished":false`)
	sections.AssertExpectations(t)
}

func TestGetSection_InvalidIDIsBadRequest(t *testing.T) {
	r, sections, _, _, _, _, _ := newRouters(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/sections/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, r.GetSection(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	sections.AssertNotCalled(t, "GetSection")
}

func TestCreateSection_RejectsUnknownType(t *testing.T) {
	r, sections, _, _, _, _, _ := newRouters(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sections",
		strings.NewReader(`{"name":"Footer","type":"footer","contents":[{"language":"en","title":"T"}]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.CreateSection(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	sections.AssertNotCalled(t, "CreateSection")
}

func TestCreateSection_RejectsMissingContents(t *testing.T) {
	r, sections, _, _, _, _, _ := newRouters(t)

	e := newTestEcho()
	for _, body := range []string{
		`{"name":"Hero","type":"hero"}`,
		`{"name":"Hero","type":"hero","contents":[]}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/sections", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, r.CreateSection(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	sections.AssertNotCalled(t, "CreateSection")
}

func TestGetArticleBySlug_NotFound(t *testing.T) {
	r, _, articles, _, _, _, _ := newRouters(t)

	articles.On("GetArticleBySlug", mock.Anything, "missing", "en").
		Return(nil, services.ErrArticleNotFound)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/articles/slug/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	require.NoError(t, r.GetArticleBySlug(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateArticle_SlugConflict(t *testing.T) {
	r, _, articles, _, _, _, _ := newRouters(t)

	articles.On("CreateArticle", mock.Anything, mock.AnythingOfType("models.Article")).
		Return(uuid.Nil, services.ErrSlugTaken)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/articles",
		strings.NewReader(`{"slug":"taken","contents":[{"language":"en","title":"T"}]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.CreateArticle(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendContactMessage_Throttled(t *testing.T) {
	r, _, _, contact, _, _, _ := newRouters(t)

	contact.On("SendMessage", mock.Anything, email.ContactMessageData{
		Name:    "Dana",
		Email:   "dana@example.com",
		Message: "hello",
	}).Return(services.ErrTooManyMessages)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/contact/message",
		strings.NewReader(`{"name":"Dana","email":"dana@example.com","message":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.SendContactMessage(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSendContactMessage_CarriesSubject(t *testing.T) {
	r, _, _, contact, _, _, _ := newRouters(t)

	contact.On("SendMessage", mock.Anything, email.ContactMessageData{
		Name:    "Dana",
		Email:   "dana@example.com",
		Subject: "Booking question",
		Message: "hello",
	}).Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/contact/message",
		strings.NewReader(`{"name":"Dana","email":"dana@example.com","subject":"Booking question","message":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.SendContactMessage(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	contact.AssertExpectations(t)
}

func TestSendContactMessage_MailerDownIsServerError(t *testing.T) {
	r, _, _, contact, _, _, _ := newRouters(t)

	contact.On("SendMessage", mock.Anything, mock.Anything).
		Return(services.ErrMailerNotConfigured)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/contact/message",
		strings.NewReader(`{"name":"Dana","email":"dana@example.com","message":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, r.SendContactMessage(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpload_NoFileIsBadRequest(t *testing.T) {
	r, _, _, _, _, _, media := newRouters(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	require.NoError(t, r.Upload(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	media.AssertNotCalled(t, "Upload")
}

func TestUpload_StoresFirstRecognizedField(t *testing.T) {
	r, _, _, _, _, _, media := newRouters(t)

	media.On("Upload", mock.Anything, "pdf", mock.AnythingOfType("*multipart.FileHeader")).
		Return(&models.Media{Path: "/uploads/pdf-abc.pdf"}, nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("pdf", "report.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	require.NoError(t, r.Upload(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/uploads/pdf-abc.pdf")
}

func TestAdminOnly(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("no token", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, AdminOnly(next)(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user", &jwt.Token{Claims: jwt.MapClaims{"uid": uuid.NewString(), "role": "viewer"}})

		require.NoError(t, AdminOnly(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user", &jwt.Token{Claims: jwt.MapClaims{"uid": uuid.NewString(), "role": models.RoleAdmin}})

		require.NoError(t, AdminOnly(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserIDFromContext_RoundTrip(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	userID := uuid.New()
	c.Set("user", &jwt.Token{Claims: jwt.MapClaims{"uid": userID.String()}})

	got, err := UserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetContact_DefaultsToEnglish(t *testing.T) {
	r, _, _, contact, _, _, _ := newRouters(t)

	contact.On("GetContact", mock.Anything, models.LanguageEN).
		Return(&models.ContactInfo{Language: models.LanguageEN, Email: "office@example.com"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, r.GetContact(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.ContactInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "office@example.com", resp.Data.Email)
}
