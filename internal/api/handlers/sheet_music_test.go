package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/mocks"
	"sheet-music-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SheetMusicHandlerTestSuite tests the SheetMusicHandler
type SheetMusicHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockSheetMusicServiceInterface
	handler     *SheetMusicHandler
}

// SetupSuite sets up the test suite
func (suite *SheetMusicHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *SheetMusicHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSheetMusicServiceInterface(suite.ctrl)
	suite.handler = NewSheetMusicHandler(suite.mockService)

	suite.router = gin.New()
	music := suite.router.Group("/api/v1/sheet-music")
	{
		music.GET("", suite.handler.ListSheetMusic)
		music.POST("", suite.handler.CreateSheetMusic)
		music.GET("/:key", suite.handler.GetSheetMusic)
		music.PUT("/:key", suite.handler.UpdateSheetMusic)
		music.DELETE("/:key", suite.handler.DeleteSheetMusic)
	}
}

// TearDownTest cleans up after each test
func (suite *SheetMusicHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SheetMusicHandlerTestSuite) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	raw := []byte(nil)
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sheetMusicResponse(title string) *service.SheetMusicResponse {
	slug := "ave-maria"
	return &service.SheetMusicResponse{ID: uuid.New(), Title: title, Author: "Anonymous", Slug: &slug, GroupID: 1}
}

// TestListSheetMusicPassesFilters tests the query binding
func (suite *SheetMusicHandlerTestSuite) TestListSheetMusicPassesFilters() {
	suite.mockService.EXPECT().List(gomock.Any()).DoAndReturn(func(params *service.SheetMusicListParams) ([]service.SheetMusicResponse, error) {
		suite.Equal("coro-norte", params.Group)
		suite.Equal("ave", params.Query)
		suite.Equal("-created_at", params.OrderBy)
		return []service.SheetMusicResponse{*sheetMusicResponse("Ave Maria")}, nil
	})

	w := suite.do(http.MethodGet, "/api/v1/sheet-music?group=coro-norte&q=ave&ordering=-created_at", nil)

	suite.Equal(http.StatusOK, w.Code)
	var response []service.SheetMusicResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 1)
}

// TestListSheetMusicUnknownGroup tests filtering by a missing group
func (suite *SheetMusicHandlerTestSuite) TestListSheetMusicUnknownGroup() {
	suite.mockService.EXPECT().List(gomock.Any()).Return(nil, apperrors.ErrGroupNotFound)

	w := suite.do(http.MethodGet, "/api/v1/sheet-music?group=nope", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// TestCreateSheetMusic tests creating sheet music
func (suite *SheetMusicHandlerTestSuite) TestCreateSheetMusic() {
	suite.mockService.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *service.CreateSheetMusicRequest) (*service.SheetMusicResponse, error) {
		suite.Equal("Ave Maria", req.Title)
		suite.Equal(uint(1), req.GroupID)
		return sheetMusicResponse("Ave Maria"), nil
	})

	w := suite.do(http.MethodPost, "/api/v1/sheet-music", map[string]interface{}{
		"title":     "Ave Maria",
		"url":       "https://x/a",
		"embed_url": "https://x/e",
		"group_id":  1,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var response SheetMusicMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Sheet music created successfully", response.Message)
	suite.Equal(SheetMusicListPath, response.Redirect)
	suite.Equal("Anonymous", response.SheetMusic.Author)
}

// TestCreateSheetMusicInvalidGroup tests the group_id field error
func (suite *SheetMusicHandlerTestSuite) TestCreateSheetMusicInvalidGroup() {
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.NewValidationError("group_id", "Select a valid choice."))

	w := suite.do(http.MethodPost, "/api/v1/sheet-music", map[string]interface{}{"title": "Ave Maria", "group_id": 999})

	suite.Equal(http.StatusBadRequest, w.Code)
	var response ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Select a valid choice.", response.Fields["group_id"])
}

// TestCreateSheetMusicDuplicateTitle tests the title conflict
func (suite *SheetMusicHandlerTestSuite) TestCreateSheetMusicDuplicateTitle() {
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrSheetMusicTitleExists)

	w := suite.do(http.MethodPost, "/api/v1/sheet-music", map[string]interface{}{"title": "Ave Maria"})

	suite.Equal(http.StatusConflict, w.Code)
}

// TestGetSheetMusic tests retrieval by key
func (suite *SheetMusicHandlerTestSuite) TestGetSheetMusic() {
	suite.mockService.EXPECT().Get("ave-maria").Return(sheetMusicResponse("Ave Maria"), nil)
	w := suite.do(http.MethodGet, "/api/v1/sheet-music/ave-maria", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().Get("missing").Return(nil, apperrors.ErrSheetMusicNotFound)
	w = suite.do(http.MethodGet, "/api/v1/sheet-music/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// TestUpdateSheetMusic tests updating sheet music
func (suite *SheetMusicHandlerTestSuite) TestUpdateSheetMusic() {
	suite.mockService.EXPECT().Update("ave-maria", gomock.Any()).Return(sheetMusicResponse("Ave Maria (Coro)"), nil)

	w := suite.do(http.MethodPut, "/api/v1/sheet-music/ave-maria", map[string]interface{}{"title": "Ave Maria (Coro)"})

	suite.Equal(http.StatusOK, w.Code)
	var response SheetMusicMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Sheet music updated successfully", response.Message)
}

// TestDeleteSheetMusic tests deleting sheet music
func (suite *SheetMusicHandlerTestSuite) TestDeleteSheetMusic() {
	suite.mockService.EXPECT().Delete("ave-maria").Return(sheetMusicResponse("Ave Maria"), nil)
	w := suite.do(http.MethodDelete, "/api/v1/sheet-music/ave-maria", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockService.EXPECT().Delete("ave-maria").Return(nil, apperrors.ErrSheetMusicNotFound)
	w = suite.do(http.MethodDelete, "/api/v1/sheet-music/ave-maria", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// TestSheetMusicHandlerTestSuite runs the test suite
func TestSheetMusicHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SheetMusicHandlerTestSuite))
}
