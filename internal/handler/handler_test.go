package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerDeps struct {
	teams   *MockTeamService
	matches *MockMatchService
	db      *MockPinger
}

func setupHandler(t *testing.T) (*Handler, handlerDeps) {
	t.Helper()
	deps := handlerDeps{
		teams:   new(MockTeamService),
		matches: new(MockMatchService),
		db:      new(MockPinger),
	}
	t.Cleanup(func() {
		deps.teams.AssertExpectations(t)
		deps.matches.AssertExpectations(t)
		deps.db.AssertExpectations(t)
	})
	return NewHandler(deps.teams, deps.matches, deps.db), deps
}

func newRequest(method, target, body string, pathID string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if pathID != "" {
		req.SetPathValue("id", pathID)
	}
	return req
}

func newFormRequest(target string, form string, pathID string) *http.Request {
	req := newRequest(http.MethodPost, target, form, pathID)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func intPtr(v int) *int {
	return &v
}

func sampleTeams(n int) []*domain.Team {
	teams := make([]*domain.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, domain.NewTeam("Team "+string(rune('A'+i)), "Hey!", 1990+i))
	}
	return teams
}

func sampleMatch() *domain.Match {
	return domain.NewMatch(0, domain.NewTeam("Lions", "Roar", 1990), domain.NewTeam("Tigers", "Grr", 2001))
}

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{domain.CodeValidation, http.StatusBadRequest},
		{domain.CodeNotFound, http.StatusNotFound},
		{domain.CodeTeamExists, http.StatusConflict},
		{domain.CodeTeamLimit, http.StatusConflict},
		{domain.CodeTeamInUse, http.StatusConflict},
		{domain.CodeBracketExist, http.StatusConflict},
		{domain.CodeMatchClosed, http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, getStatusCode(tt.code))
		})
	}
}
