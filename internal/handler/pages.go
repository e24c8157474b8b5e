package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/rs/zerolog/hlog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var actionLabels = map[string]string{
	"plif": "Plif (+5)",
	"adv":  "Advrungh (+3)",
	"blot": "Blot (-2)",
}

type actionButton struct {
	Code  string
	Label string
}

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"add": func(a, b int) int {
		return a + b
	},
	"actions": sideActions,
}).ParseFS(templatesFS, "templates/*.html"))

// sideActions возвращает кнопки действий для стороны "A" или "B"
func sideActions(side string) []actionButton {
	prefix := "team" + side + "_"
	var buttons []actionButton
	for _, action := range domain.Actions() {
		code := string(action)
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		buttons = append(buttons, actionButton{
			Code:  code,
			Label: actionLabels[strings.TrimPrefix(code, prefix)],
		})
	}
	return buttons
}

type teamsPage struct {
	Teams    []*domain.Team
	Error    string
	MaxTeams int
}

type phasePage struct {
	Matches []*domain.Match
}

type matchPage struct {
	Match *domain.Match
}

// render собирает страницу в буфер, чтобы ошибка шаблона не оставила половину ответа
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("template", name).Msg("template failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "index", nil)
}

func (h *Handler) TeamsPage(w http.ResponseWriter, r *http.Request) {
	h.renderTeams(w, r, http.StatusOK, "")
}

func (h *Handler) renderTeams(w http.ResponseWriter, r *http.Request, status int, message string) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	h.render(w, r, status, "teams", teamsPage{
		Teams:    teams,
		Error:    message,
		MaxTeams: domain.MaxTeams,
	})
}

// CreateTeamForm регистрирует команду из формы. Ошибки валидации и конфликты показываются на странице.
func (h *Handler) CreateTeamForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderTeams(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	in := domain.CreateTeamInput{
		Name:   r.PostFormValue("name"),
		WarCry: r.PostFormValue("warCry"),
	}
	if raw := strings.TrimSpace(r.PostFormValue("foundationYear")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.renderTeams(w, r, http.StatusBadRequest, "foundationYear must be a number")
			return
		}
		in.FoundationYear = &year
	}

	if _, err := h.teamService.CreateTeam(r.Context(), in); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code != domain.CodeNotFound {
			h.renderTeams(w, r, getStatusCode(domainErr.Code), domainErr.Error())
			return
		}
		h.handlePageError(w, r, err)
		return
	}

	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}

func (h *Handler) DeleteTeamForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "team")
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		h.handlePageError(w, r, err)
		return
	}

	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}

// StartPage показывает сетку; при первом посещении сетка формируется
func (h *Handler) StartPage(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListMatches(r.Context())
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	if len(matches) == 0 {
		matches, err = h.matchService.GenerateBracket(r.Context())
		if errors.Is(err, domain.ErrBracketExists) {
			// параллельный запрос успел сформировать сетку
			matches, err = h.matchService.ListMatches(r.Context())
		}
		if err != nil {
			h.handlePageError(w, r, err)
			return
		}
	}

	h.render(w, r, http.StatusOK, "phase", phasePage{Matches: matches})
}

func (h *Handler) MatchPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "match")
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), id)
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "match", matchPage{Match: match})
}

func (h *Handler) UpdateMatchForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "match")
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	if _, err := h.matchService.ApplyMatchAction(r.Context(), id, r.PostFormValue("action")); err != nil {
		h.handlePageError(w, r, err)
		return
	}

	http.Redirect(w, r, "/match/"+id.String(), http.StatusSeeOther)
}

func (h *Handler) EndMatchForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "match")
	if err != nil {
		h.handlePageError(w, r, err)
		return
	}

	if _, err := h.matchService.CloseMatch(r.Context(), id); err != nil {
		h.handlePageError(w, r, err)
		return
	}

	http.Redirect(w, r, "/start", http.StatusSeeOther)
}
