package usecase

import (
	"sort"
	"strings"
	"time"

	"teamboard/internal/dashboard/repository"
	"teamboard/internal/model"
)

// closedStatusMarkers classify a status transition target as "closing".
var closedStatusMarkers = []string{"done", "complete", "cancel"}

// summarizeActivity attributes an issue's last update to either its latest
// comment or its most recent human changelog entry, within the configured
// correlation window. An unattributable update yields a nil detail, which
// is not an error.
func (uc *implUseCase) summarizeActivity(issue repository.Issue, lastUpdated time.Time) (*model.UpdateDetail, []model.ChangeSet) {
	history := uc.changeHistory(issue.Changelog)

	if detail := uc.commentDetail(issue.Fields.Comment, lastUpdated); detail != nil {
		return detail, history
	}
	return uc.changelogDetail(history, lastUpdated), history
}

// changeHistory converts the raw changelog, dropping automation-authored
// entries, most recent first.
func (uc *implUseCase) changeHistory(changelog *repository.Changelog) []model.ChangeSet {
	history := []model.ChangeSet{}
	if changelog == nil {
		return history
	}
	for _, h := range changelog.Histories {
		if h.Author.DisplayName == uc.cfg.AutomationName {
			continue
		}
		created, err := uc.calendar.ParseTimestamp(h.Created)
		if err != nil {
			continue
		}
		set := model.ChangeSet{Author: h.Author.DisplayName, Created: created}
		for _, item := range h.Items {
			set.Changes = append(set.Changes, model.FieldChange{
				Field: item.Field,
				From:  item.FromString,
				To:    item.ToString,
			})
		}
		history = append(history, set)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Created.After(history[j].Created)
	})
	return history
}

func (uc *implUseCase) commentDetail(page *repository.CommentPage, lastUpdated time.Time) *model.UpdateDetail {
	if page == nil || len(page.Comments) == 0 {
		return nil
	}
	var latest time.Time
	for _, c := range page.Comments {
		if ts, err := uc.calendar.ParseTimestamp(c.Created); err == nil && ts.After(latest) {
			latest = ts
		}
	}
	if latest.IsZero() || !withinWindow(lastUpdated, latest, uc.cfg.ActivityWindow) {
		return nil
	}
	return &model.UpdateDetail{Type: model.UpdateDetailTwoLine, Line1: "add", Line2: "Comment"}
}

func (uc *implUseCase) changelogDetail(history []model.ChangeSet, lastUpdated time.Time) *model.UpdateDetail {
	if len(history) == 0 {
		return nil
	}
	latest := history[0]
	if !withinWindow(lastUpdated, latest.Created, uc.cfg.ActivityWindow) || len(latest.Changes) == 0 {
		return nil
	}

	for _, change := range latest.Changes {
		if strings.EqualFold(change.Field, "status") {
			if isClosingStatus(change.To) {
				return &model.UpdateDetail{Type: model.UpdateDetailSimple, Text: "Close Task"}
			}
			return &model.UpdateDetail{Type: model.UpdateDetailFromTo, From: change.From, To: change.To}
		}
	}
	for _, change := range latest.Changes {
		if strings.EqualFold(change.Field, "priority") {
			return &model.UpdateDetail{Type: model.UpdateDetailFromTo, From: change.From, To: change.To}
		}
	}
	first := latest.Changes[0]
	return &model.UpdateDetail{Type: model.UpdateDetailTwoLine, Line1: "change", Line2: capitalize(first.Field)}
}

func withinWindow(a, b time.Time, window time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= window
}

func isClosingStatus(status string) bool {
	lower := strings.ToLower(status)
	for _, marker := range closedStatusMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
