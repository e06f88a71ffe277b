package jira

import (
	"context"
	"fmt"
	"net/http"

	"teamboard/internal/dashboard/repository"
)

type transitionsResponse struct {
	Transitions []repository.Transition `json:"transitions"`
}

func (r *implRepository) GetTransitions(ctx context.Context, issueID string) ([]repository.Transition, error) {
	var resp transitionsResponse
	path := fmt.Sprintf("/rest/api/3/issue/%s/transitions", issueID)
	if err := r.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get transitions for %s: %w", issueID, err)
	}
	return resp.Transitions, nil
}

func (r *implRepository) TransitionIssue(ctx context.Context, issueID, transitionID string) error {
	path := fmt.Sprintf("/rest/api/3/issue/%s/transitions", issueID)
	body := map[string]any{
		"transition": map[string]string{"id": transitionID},
	}
	if err := r.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("transition %s: %w", issueID, err)
	}
	r.l.Infof(ctx, "issue %s transitioned via %s", issueID, transitionID)
	return nil
}

func (r *implRepository) UpdateIssue(ctx context.Context, issueID string, payload repository.UpdatePayload) error {
	path := fmt.Sprintf("/rest/api/3/issue/%s", issueID)
	if err := r.do(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("update %s: %w", issueID, err)
	}
	r.l.Infof(ctx, "issue %s updated", issueID)
	return nil
}
