package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type stubScoringService struct {
	submitErr error
	sheet     domain.ScoreSheet
	sheetErr  error

	gotRound   domain.RoundType
	gotEntries []service.ScoreEntry
}

func (s *stubScoringService) SubmitScores(_ context.Context, round domain.RoundType, entries []service.ScoreEntry, _ string) error {
	s.gotRound = round
	s.gotEntries = entries

	return s.submitErr
}

func (s *stubScoringService) SavePlayerSheet(_ context.Context, round domain.RoundType, _ string, _ map[string]map[string]*int, _ string) error {
	s.gotRound = round

	return s.submitErr
}

func (s *stubScoringService) GetRoundSheet(_ context.Context, _ domain.RoundType) (domain.ScoreSheet, error) {
	return s.sheet, s.sheetErr
}

func scoreTestRouter(svc ScoringService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewScoreHandler(svc)
	router.GET("/scores", handler.HandleGetScores)
	router.POST("/scores", handler.HandleSubmitScores)
	router.POST("/scores/player", handler.HandleSavePlayerSheet)

	return router
}

func TestHandleSubmitScores(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		submitErr  error
		wantStatus int
	}{
		{
			name:       "valid batch accepted",
			body:       `{"round":"qualification","scores":[{"playerId":"p1","judgeId":"j1","criterionId":"c1","points":10}]}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "locked round returns conflict",
			body:       `{"round":"finals","scores":[{"playerId":"p1","judgeId":"j1","criterionId":"c1","points":10}]}`,
			submitErr:  service.ErrRoundLocked,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "out of range points rejected",
			body:       `{"round":"qualification","scores":[{"playerId":"p1","judgeId":"j1","criterionId":"c1","points":99}]}`,
			submitErr:  service.ErrPointsOutOfRange,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown criterion returns not found",
			body:       `{"round":"qualification","scores":[{"playerId":"p1","judgeId":"j1","criterionId":"nope","points":1}]}`,
			submitErr:  service.ErrCriterionNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown round rejected before the service",
			body:       `{"round":"semis","scores":[{"playerId":"p1","judgeId":"j1","criterionId":"c1","points":1}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty batch rejected",
			body:       `{"round":"qualification","scores":[]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubScoringService{submitErr: tt.submitErr}
			router := scoreTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestHandleSavePlayerSheet(t *testing.T) {
	svc := &stubScoringService{}
	router := scoreTestRouter(svc)

	body := `{"round":"qualification","playerId":"p1","allJudgesScores":{"j1":{"c1":10,"c2":null}}}`
	req := httptest.NewRequest(http.MethodPost, "/scores/player", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, domain.RoundQualification, svc.gotRound)
}

func TestHandleGetScores(t *testing.T) {
	svc := &stubScoringService{
		sheet: domain.ScoreSheet{"p1": {"j1": {"c1": 15}}},
	}
	router := scoreTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/scores?round=qualification", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t,
		`{"round":"qualification","scores":{"p1":{"j1":{"c1":15}}}}`,
		resp.Body.String(),
	)
}
