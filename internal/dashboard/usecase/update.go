package usecase

import (
	"context"
	"fmt"

	"teamboard/internal/dashboard"
	"teamboard/internal/dashboard/repository"
)

func (uc *implUseCase) UpdateTask(ctx context.Context, taskID string, input dashboard.UpdateInput) error {
	if input == (dashboard.UpdateInput{}) {
		return dashboard.ErrEmptyUpdate
	}

	if !uc.isConnected() {
		return uc.applyDemoUpdate(ctx, taskID, input)
	}

	payload := repository.UpdatePayload{}
	fields := map[string]any{}
	if input.Priority != "" {
		fields["priority"] = map[string]string{"name": input.Priority}
	}
	if input.BICategory != "" {
		fields["customfield_10307"] = map[string]string{"value": input.BICategory}
	}
	if len(fields) > 0 {
		payload.Fields = fields
	}
	if input.Comment != "" {
		payload.Update = map[string]any{
			"comment": []any{
				map[string]any{"add": map[string]any{"body": commentDocument(input.Comment)}},
			},
		}
	}

	if payload.Fields != nil || payload.Update != nil {
		if err := uc.repo.UpdateIssue(ctx, taskID, payload); err != nil {
			return fmt.Errorf("update task %s: %w", taskID, err)
		}
	}
	if input.StatusID != "" {
		if err := uc.repo.TransitionIssue(ctx, taskID, input.StatusID); err != nil {
			return fmt.Errorf("transition task %s: %w", taskID, err)
		}
	}

	// The snapshot is rebuilt rather than patched so derived fields stay
	// consistent with the tracker.
	uc.reload(ctx)
	return nil
}

func (uc *implUseCase) Transitions(ctx context.Context, taskID string) ([]dashboard.Transition, error) {
	if !uc.isConnected() {
		return uc.demoTransitions(taskID)
	}

	raw, err := uc.repo.GetTransitions(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list transitions for %s: %w", taskID, err)
	}
	transitions := make([]dashboard.Transition, 0, len(raw))
	for _, t := range raw {
		out := dashboard.Transition{ID: t.ID, Name: t.Name}
		if t.To != nil {
			out.ToStatus = t.To.Name
		}
		transitions = append(transitions, out)
	}
	return transitions, nil
}

func (uc *implUseCase) isConnected() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.connected
}

// commentDocument wraps plain text in the minimal rich-text document the
// tracker accepts for comment bodies.
func commentDocument(text string) map[string]any {
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": text},
				},
			},
		},
	}
}
