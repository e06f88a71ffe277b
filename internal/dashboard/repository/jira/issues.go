package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"teamboard/internal/dashboard/repository"
)

const searchPageSize = 100

var searchFields = strings.Join([]string{
	"summary", "assignee", "status", "created", "updated", "duedate",
	"priority", "description", "comment", "customfield_10016",
	"resolutiondate", "labels", "customfield_10306", "customfield_10307",
}, ",")

type searchResponse struct {
	StartAt    int                `json:"startAt"`
	MaxResults int                `json:"maxResults"`
	Total      int                `json:"total"`
	Issues     []repository.Issue `json:"issues"`
}

func (r *implRepository) SearchIssues(ctx context.Context, opts repository.SearchIssuesOptions) ([]repository.Issue, error) {
	if opts.ProjectKey == "" {
		return nil, repository.ErrNotConfigured
	}
	jql := buildJQL(opts)

	var all []repository.Issue
	startAt := 0
	for {
		q := url.Values{}
		q.Set("jql", jql)
		q.Set("startAt", strconv.Itoa(startAt))
		q.Set("maxResults", strconv.Itoa(searchPageSize))
		q.Set("fields", searchFields)
		q.Set("expand", "changelog")

		var page searchResponse
		if err := r.do(ctx, http.MethodGet, "/rest/api/3/search?"+q.Encode(), nil, &page); err != nil {
			return nil, fmt.Errorf("search issues: %w", err)
		}

		all = append(all, page.Issues...)
		startAt += len(page.Issues)
		if len(page.Issues) == 0 || startAt >= page.Total {
			break
		}
	}

	r.l.Debugf(ctx, "fetched %d issues for project %s", len(all), opts.ProjectKey)
	return all, nil
}

func buildJQL(opts repository.SearchIssuesOptions) string {
	clauses := []string{fmt.Sprintf("project = %s", opts.ProjectKey)}
	if opts.CreatedSince != "" {
		clauses = append(clauses, fmt.Sprintf("created >= %s", opts.CreatedSince))
	}
	if len(opts.AssigneeEmails) > 0 {
		quoted := make([]string, 0, len(opts.AssigneeEmails))
		for _, email := range opts.AssigneeEmails {
			quoted = append(quoted, strconv.Quote(email))
		}
		clauses = append(clauses, fmt.Sprintf("assignee in (%s)", strings.Join(quoted, ",")))
	}
	return strings.Join(clauses, " AND ") + " ORDER BY created DESC"
}
