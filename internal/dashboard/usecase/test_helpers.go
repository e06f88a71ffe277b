package usecase

import (
	"context"

	"teamboard/internal/dashboard/repository"
	"teamboard/internal/settings"
	"teamboard/pkg/adf"
	"teamboard/pkg/dateutil"
)

// Shared test doubles for this package's tests.

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
	getErr   error
	putErr   error
}

func (m *mockStore) Get(ctx context.Context) (settings.Settings, error) {
	return m.settings, m.getErr
}

func (m *mockStore) Put(ctx context.Context, s settings.Settings) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.settings = s
	return nil
}

type mockRepository struct {
	searchFn      func(ctx context.Context, opts repository.SearchIssuesOptions) ([]repository.Issue, error)
	transitionsFn func(ctx context.Context, issueID string) ([]repository.Transition, error)
	transitionFn  func(ctx context.Context, issueID, transitionID string) error
	updateFn      func(ctx context.Context, issueID string, payload repository.UpdatePayload) error
}

func (m *mockRepository) SearchIssues(ctx context.Context, opts repository.SearchIssuesOptions) ([]repository.Issue, error) {
	if m.searchFn == nil {
		return nil, nil
	}
	return m.searchFn(ctx, opts)
}

func (m *mockRepository) GetTransitions(ctx context.Context, issueID string) ([]repository.Transition, error) {
	if m.transitionsFn == nil {
		return nil, nil
	}
	return m.transitionsFn(ctx, issueID)
}

func (m *mockRepository) TransitionIssue(ctx context.Context, issueID, transitionID string) error {
	if m.transitionFn == nil {
		return nil
	}
	return m.transitionFn(ctx, issueID, transitionID)
}

func (m *mockRepository) UpdateIssue(ctx context.Context, issueID string, payload repository.UpdatePayload) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, issueID, payload)
}

func newTestUseCase(repo repository.IssueRepository, store settings.Store) *implUseCase {
	calendar, err := dateutil.NewCalendar("UTC")
	if err != nil {
		panic(err)
	}
	if store == nil {
		store = &mockStore{}
	}
	return New(&mockLogger{}, repo, store, adf.NewRenderer(adf.Options{}), calendar, Config{}).(*implUseCase)
}
