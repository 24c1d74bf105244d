package routes_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"sheet-music-backend/internal/api/routes"
	"sheet-music-backend/internal/auth"
	"sheet-music-backend/internal/config"
	"sheet-music-backend/internal/database"
	"sheet-music-backend/internal/repository"
	"sheet-music-backend/internal/service"
	"sheet-music-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// RoutesTestSuite drives the whole HTTP surface against a sqlite store
type RoutesTestSuite struct {
	suite.Suite
	http *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RoutesTestSuite) SetupTest() {
	auth.PasswordCost = bcrypt.MinCost
	db := testutils.NewSQLiteDB(suite.T())

	users := service.NewUserService(repository.NewUserRepository(db), service.NewValidator())
	_, err := users.CreateUser(&service.CreateUserRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	suite.Require().NoError(err)
	_, err = users.CreateSuperuser(&service.CreateUserRequest{Email: "root@example.com", Password: "r00t-pass"})
	suite.Require().NoError(err)

	router, err := routes.SetupRoutes(db, &config.Config{
		DatabaseDriver:    database.DriverSQLite,
		JWTSecret:         "test-signing-key",
		SessionTTL:        time.Hour,
		SessionCookieName: "sessionid",
		AllowedOrigins:    []string{"http://localhost:3000"},
		MetricsEnabled:    true,
	})
	suite.Require().NoError(err)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router = router
}

func (suite *RoutesTestSuite) login() map[string]string {
	return suite.loginAs("ana@example.com", "s3cret-pass")
}

func (suite *RoutesTestSuite) loginAs(email, password string) map[string]string {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	return map[string]string{"Authorization": "Bearer " + body["token"].(string)}
}

// TestAnonymousCanRead tests that listing needs no session
func (suite *RoutesTestSuite) TestAnonymousCanRead() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/sheet-music", nil)

	var body []interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Empty(body)
}

// TestAnonymousCannotWrite tests the unauthorized contract for API clients and browsers
func (suite *RoutesTestSuite) TestAnonymousCannotWrite() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/groups", map[string]string{"name": "Coro Norte"})
	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusUnauthorized, &body)
	suite.Equal(auth.DefaultLoginPath, body["redirect"])

	recorder = suite.http.MakeFormRequest(http.MethodPost, "/api/v1/groups", url.Values{"name": {"Coro Norte"}}, nil)
	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal(auth.DefaultLoginPath+"?next=%2Fapi%2Fv1%2Fgroups", recorder.Header().Get("Location"))

	recorder = suite.http.MakeRequest(http.MethodGet, "/api/v1/groups", nil)
	var groups []interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &groups)
	suite.Empty(groups)
}

// TestBrowserFormMutationRedirects tests that form posts from a browser land on the list view
func (suite *RoutesTestSuite) TestBrowserFormMutationRedirects() {
	headers := suite.login()

	recorder := suite.http.MakeFormRequest(http.MethodPost, "/api/v1/groups", url.Values{"name": {"Coro Norte"}}, headers)
	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/api/v1/groups?message=Group+created+successfully", recorder.Header().Get("Location"))

	recorder = suite.http.MakeRequest(http.MethodGet, "/api/v1/groups/coro-norte", nil)
	var group service.GroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &group)

	recorder = suite.http.MakeFormRequest(http.MethodPost, "/api/v1/sheet-music", url.Values{
		"title":     {"Ave Maria"},
		"url":       {"https://flat.io/score/ave"},
		"embed_url": {"https://flat.io/embed/ave"},
		"group_id":  {strconv.FormatUint(uint64(group.ID), 10)},
	}, headers)
	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/api/v1/sheet-music?message=Sheet+music+created+successfully", recorder.Header().Get("Location"))

	recorder = suite.http.MakeFormRequest(http.MethodPut, "/api/v1/groups/coro-norte", url.Values{"name": {"Coro del Norte"}}, headers)
	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/api/v1/groups?message=Group+updated+successfully", recorder.Header().Get("Location"))

	// Validation failures still answer with the field errors
	recorder = suite.http.MakeFormRequest(http.MethodPost, "/api/v1/groups", url.Values{"name": {""}}, headers)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestCatalogueOverHTTP tests create, list, update and cascade delete with a session
func (suite *RoutesTestSuite) TestCatalogueOverHTTP() {
	headers := suite.login()

	recorder := suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/groups", map[string]string{"name": "Coro Norte"}, headers)
	var created struct {
		Message  string                `json:"message"`
		Redirect string                `json:"redirect"`
		Group    service.GroupResponse `json:"group"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)
	suite.Equal("/api/v1/groups", created.Redirect)
	suite.Equal("coro-norte", *created.Group.Slug)

	recorder = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/groups", map[string]string{"name": "coro  norte!"}, headers)
	suite.Equal(http.StatusConflict, recorder.Code)

	for _, title := range []string{"Ave Maria", "Adeste Fideles"} {
		recorder = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/sheet-music", map[string]interface{}{
			"title":     title,
			"url":       "https://x/" + url.PathEscape(title),
			"embed_url": "https://x/e/" + url.PathEscape(title),
			"group_id":  created.Group.ID,
		}, headers)
		suite.Equal(http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	recorder = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/sheet-music", map[string]interface{}{
		"title":     "Orphan",
		"url":       "https://x/o",
		"embed_url": "https://x/eo",
		"group_id":  999,
	}, headers)
	var invalid map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &invalid)
	suite.Contains(invalid["fields"], "group_id")

	recorder = suite.http.MakeRequest(http.MethodGet, "/api/v1/sheet-music", nil)
	var listed []service.SheetMusicResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &listed)
	suite.Require().Len(listed, 2)
	suite.Equal("Adeste Fideles", listed[0].Title)
	suite.Equal("Anonymous", listed[1].Author)

	recorder = suite.http.MakeRequestWithHeaders(http.MethodPut, "/api/v1/groups/coro-norte", map[string]string{"name": "Coro del Norte"}, headers)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.http.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/groups/coro-norte", nil, headers)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.http.MakeRequest(http.MethodGet, "/api/v1/sheet-music", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &listed)
	suite.Empty(listed)
}

// TestLogoutRevokesHandle tests that a logged out handle no longer authorizes writes
func (suite *RoutesTestSuite) TestLogoutRevokesHandle() {
	headers := suite.login()

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/auth/me", nil, headers)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/auth/logout", nil, headers)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.http.MakeRequestWithHeaders(http.MethodPost, "/api/v1/groups", map[string]string{"name": "Coro Norte"}, headers)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestStaffDeactivatesUser tests that only staff can disable accounts and that it ends their sessions
func (suite *RoutesTestSuite) TestStaffDeactivatesUser() {
	ana := suite.login()

	recorder := suite.http.MakeRequestWithHeaders(http.MethodPut, "/api/v1/auth/users/root@example.com/active", map[string]bool{"is_active": false}, ana)
	suite.Equal(http.StatusForbidden, recorder.Code)

	root := suite.loginAs("root@example.com", "r00t-pass")
	recorder = suite.http.MakeRequestWithHeaders(http.MethodPut, "/api/v1/auth/users/ana@example.com/active", map[string]bool{"is_active": false}, root)
	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal("User deactivated successfully", body["message"])

	recorder = suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/auth/me", nil, ana)
	suite.Equal(http.StatusUnauthorized, recorder.Code)

	recorder = suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "ana@example.com", "password": "s3cret-pass"})
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestInvalidLogin tests the generic failure for unknown and wrong credentials
func (suite *RoutesTestSuite) TestInvalidLogin() {
	var messages []string
	for _, creds := range []map[string]string{
		{"email": "ana@example.com", "password": "wrong"},
		{"email": "ghost@example.com", "password": "s3cret-pass"},
	} {
		recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", creds)
		var body map[string]interface{}
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusUnauthorized, &body)
		messages = append(messages, body["error"].(string))
	}
	suite.Equal(messages[0], messages[1])
}

// TestOperationalEndpoints tests health, metrics and the catch-all
func (suite *RoutesTestSuite) TestOperationalEndpoints() {
	suite.Equal(http.StatusOK, suite.http.MakeRequest(http.MethodGet, "/health", nil).Code)
	suite.Equal(http.StatusOK, suite.http.MakeRequest(http.MethodGet, "/health/live", nil).Code)
	suite.Equal(http.StatusOK, suite.http.MakeRequest(http.MethodGet, "/metrics", nil).Code)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/nothing-here", nil)
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.NotEmpty(body["request_id"])
}

// TestRoutesTestSuite runs the test suite
func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
