package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
	"teamboard/internal/settings"
	"teamboard/pkg/dateutil"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

type mockStore struct {
	settings settings.Settings
	putErr   error
}

func (m *mockStore) Get(ctx context.Context) (settings.Settings, error) { return m.settings, nil }
func (m *mockStore) Put(ctx context.Context, s settings.Settings) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.settings = s
	return nil
}

type mockUseCase struct {
	tasksFn      func(ctx context.Context, input dashboard.TasksInput) ([]model.Task, error)
	updateFn     func(ctx context.Context, taskID string, input dashboard.UpdateInput) error
	refreshCalls int
}

func (m *mockUseCase) Refresh(ctx context.Context) dashboard.RefreshOutput {
	m.refreshCalls++
	return dashboard.RefreshOutput{Connected: true, TaskCount: 1}
}
func (m *mockUseCase) Status(ctx context.Context) dashboard.StatusOutput {
	return dashboard.StatusOutput{Connected: true, TaskCount: 1}
}
func (m *mockUseCase) Tasks(ctx context.Context, input dashboard.TasksInput) ([]model.Task, error) {
	if m.tasksFn == nil {
		return []model.Task{}, nil
	}
	return m.tasksFn(ctx, input)
}
func (m *mockUseCase) Grouped(ctx context.Context, input dashboard.TasksInput, dim dashboard.Dimension) ([]dashboard.Group, error) {
	if dim != dashboard.DimensionAssignee && dim != dashboard.DimensionDepartment &&
		dim != dashboard.DimensionCategory && dim != dashboard.DimensionStatus {
		return nil, dashboard.ErrUnknownDimension
	}
	return []dashboard.Group{{Key: "Alice", Count: 1}}, nil
}
func (m *mockUseCase) SourceRollup(ctx context.Context, input dashboard.TasksInput) ([]dashboard.DepartmentRollup, error) {
	return []dashboard.DepartmentRollup{{Name: "Finance", TaskCount: 1}}, nil
}
func (m *mockUseCase) AssigneeSourceRollup(ctx context.Context, input dashboard.TasksInput) ([]dashboard.AssigneeRollup, error) {
	return []dashboard.AssigneeRollup{}, nil
}
func (m *mockUseCase) DailyWorkload(ctx context.Context, input dashboard.TasksInput, dim dashboard.Dimension) (dashboard.DailyWorkloadOutput, error) {
	if dim == dashboard.DimensionStatus {
		return dashboard.DailyWorkloadOutput{}, dashboard.ErrUnknownDimension
	}
	return dashboard.DailyWorkloadOutput{ActiveKeys: []string{"Alice"}}, nil
}
func (m *mockUseCase) WorkloadByPerson(ctx context.Context) []dashboard.WorkloadEntry {
	return []dashboard.WorkloadEntry{{Assignee: "Alice", Total: 1}}
}
func (m *mockUseCase) LabelLeaderboard(ctx context.Context, input dashboard.TasksInput) ([]dashboard.LeaderboardEntry, error) {
	return []dashboard.LeaderboardEntry{}, nil
}
func (m *mockUseCase) GanttBounds(ctx context.Context, input dashboard.TasksInput) (dashboard.GanttBounds, error) {
	return dashboard.GanttBounds{MinDate: "2024-01-01", MaxDate: "2024-02-01"}, nil
}
func (m *mockUseCase) Colors(ctx context.Context, dim dashboard.Dimension) (map[string]string, error) {
	return map[string]string{"Alice": "#3b82f6"}, nil
}
func (m *mockUseCase) UpdateTask(ctx context.Context, taskID string, input dashboard.UpdateInput) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, taskID, input)
}
func (m *mockUseCase) Transitions(ctx context.Context, taskID string) ([]dashboard.Transition, error) {
	return []dashboard.Transition{{ID: "21", Name: "Start"}}, nil
}

func newTestRouter(uc *mockUseCase, store *mockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	calendar, _ := dateutil.NewCalendar("UTC")

	r := gin.New()
	h := New(&mockLogger{}, uc, store, calendar)
	h.MapRoutes(r.Group("/api/v1"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTasks_ForwardsFilters(t *testing.T) {
	var gotInput dashboard.TasksInput
	uc := &mockUseCase{
		tasksFn: func(ctx context.Context, input dashboard.TasksInput) ([]model.Task, error) {
			gotInput = input
			return []model.Task{{ID: "TB-1"}}, nil
		},
	}
	r := newTestRouter(uc, &mockStore{})

	w := doRequest(t, r, http.MethodGet,
		"/api/v1/dashboard/tasks?task_name=report&assignee=Alice&assignee=Bob&start=2024-03-01&end=2024-03-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotInput.Filters.TaskName != "report" || len(gotInput.Filters.Assignees) != 2 {
		t.Errorf("filters = %+v", gotInput.Filters)
	}
	if !gotInput.Range.Active() {
		t.Error("date range not parsed")
	}
}

func TestGetView_Dimensions(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, &mockStore{})

	for _, dim := range []string{"assignee", "department", "category", "status", "sources", "assignee-sources"} {
		w := doRequest(t, r, http.MethodGet, "/api/v1/dashboard/views/"+dim, nil)
		if w.Code != http.StatusOK {
			t.Errorf("view %s: status = %d", dim, w.Code)
		}
	}

	w := doRequest(t, r, http.MethodGet, "/api/v1/dashboard/views/bogus", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown dimension: status = %d, want 400", w.Code)
	}
}

func TestGetDailyWorkload_RejectsStatusView(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, &mockStore{})

	if w := doRequest(t, r, http.MethodGet, "/api/v1/dashboard/workload/daily", nil); w.Code != http.StatusOK {
		t.Errorf("default view: status = %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, "/api/v1/dashboard/workload/daily?view=status", nil); w.Code != http.StatusBadRequest {
		t.Errorf("status view: status = %d, want 400", w.Code)
	}
}

func TestUpdateTask_Statuses(t *testing.T) {
	uc := &mockUseCase{
		updateFn: func(ctx context.Context, taskID string, input dashboard.UpdateInput) error {
			if taskID == "missing" {
				return dashboard.ErrTaskNotFound
			}
			if input == (dashboard.UpdateInput{}) {
				return dashboard.ErrEmptyUpdate
			}
			return nil
		},
	}
	r := newTestRouter(uc, &mockStore{})

	if w := doRequest(t, r, http.MethodPut, "/api/v1/dashboard/tasks/TB-1", updateTaskReq{Priority: "High"}); w.Code != http.StatusOK {
		t.Errorf("valid update: status = %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodPut, "/api/v1/dashboard/tasks/missing", updateTaskReq{Priority: "High"}); w.Code != http.StatusNotFound {
		t.Errorf("missing task: status = %d, want 404", w.Code)
	}
	if w := doRequest(t, r, http.MethodPut, "/api/v1/dashboard/tasks/TB-1", updateTaskReq{}); w.Code != http.StatusBadRequest {
		t.Errorf("empty update: status = %d, want 400", w.Code)
	}
}

func TestPostTransition_RequiresID(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, &mockStore{})

	if w := doRequest(t, r, http.MethodPost, "/api/v1/dashboard/tasks/TB-1/transitions", postTransitionReq{TransitionID: "21"}); w.Code != http.StatusOK {
		t.Errorf("valid transition: status = %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodPost, "/api/v1/dashboard/tasks/TB-1/transitions", map[string]string{}); w.Code != http.StatusBadRequest {
		t.Errorf("missing transition id: status = %d, want 400", w.Code)
	}
}

func TestPutSettings_SavesAndRefreshes(t *testing.T) {
	uc := &mockUseCase{}
	store := &mockStore{}
	r := newTestRouter(uc, store)

	w := doRequest(t, r, http.MethodPut, "/api/v1/settings", settingsReq{
		ProjectKey:     "TB",
		AssigneeEmails: []string{"alice@lmwn.com"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if store.settings.ProjectKey != "TB" {
		t.Errorf("settings not saved: %+v", store.settings)
	}
	if uc.refreshCalls != 1 {
		t.Errorf("refresh calls = %d, want 1", uc.refreshCalls)
	}
}

func TestGetStatus_Envelope(t *testing.T) {
	r := newTestRouter(&mockUseCase{}, &mockStore{})

	w := doRequest(t, r, http.MethodGet, "/api/v1/dashboard/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.ErrorCode != 0 || body.Message != "Success" {
		t.Errorf("envelope = %+v", body)
	}
}
