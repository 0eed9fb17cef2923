package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/text/language"

	"github.com/Pranav99t/polytask/internal/api/app"
	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
)

// Handlers holds the API surface the routes dispatch into.
type Handlers struct {
	Orgs     *app.OrganizationAPI
	Projects *app.ProjectAPI
	Tasks    *app.TaskAPI
	Comments *app.CommentAPI
	Feed     *notify.Hub
}

// requestLocale resolves the viewer locale: explicit ?locale= wins, then the
// Accept-Language header, then the default.
func requestLocale(r *http.Request) domain.Locale {
	if q := r.URL.Query().Get("locale"); q != "" {
		return domain.MatchLocale(q)
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		if tags, _, err := language.ParseAcceptLanguage(al); err == nil && len(tags) > 0 {
			return domain.MatchLocale(tags[0].String())
		}
	}
	return domain.DefaultLocale
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id", errBadRequest)
	}
	return id, nil
}

func queryID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is required", errBadRequest, key)
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func (h *Handlers) CreateOrganization(w http.ResponseWriter, r *http.Request) error {
	var req app.CreateOrganizationRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	o, err := h.Orgs.Create(r.Context(), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, o)
	return nil
}

func (h *Handlers) ListOrganizations(w http.ResponseWriter, r *http.Request) error {
	out, err := h.Orgs.List(r.Context(), requestLocale(r))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) DeleteOrganization(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.Orgs.Delete(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) error {
	var req app.CreateProjectRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	p, err := h.Projects.Create(r.Context(), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, p)
	return nil
}

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) error {
	orgID, err := queryID(r, "organization_id")
	if err != nil {
		return err
	}
	out, err := h.Projects.List(r.Context(), orgID, requestLocale(r))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.Projects.Delete(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) error {
	var req app.CreateTaskRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	t, err := h.Tasks.Create(r.Context(), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, t)
	return nil
}

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) error {
	projectID, err := queryID(r, "project_id")
	if err != nil {
		return err
	}
	out, err := h.Tasks.List(r.Context(), projectID, requestLocale(r))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	t, err := h.Tasks.Get(r.Context(), id, requestLocale(r))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, t)
	return nil
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	var req app.UpdateTaskRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	t, err := h.Tasks.Update(r.Context(), id, req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, t)
	return nil
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.Tasks.Delete(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) error {
	var req app.CreateCommentRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	c, err := h.Comments.Create(r.Context(), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, c)
	return nil
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) error {
	taskID, err := queryID(r, "task_id")
	if err != nil {
		return err
	}
	out, err := h.Comments.List(r.Context(), taskID, requestLocale(r))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.Comments.Delete(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// filterByTask scopes comment events to one thread, whatever the event payload.
func filterByTask(taskID int64) notify.Filter {
	return func(ev notify.Event) bool {
		switch row := ev.Row.(type) {
		case *domain.Comment:
			return row.TaskID == taskID
		case *domain.Translation:
			// Translation rows carry no parent id; let subscribers drop
			// non-matching ids themselves.
			return true
		default:
			return false
		}
	}
}
