package usecase

import (
	"context"
	"sort"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

func (uc *implUseCase) Grouped(ctx context.Context, input dashboard.TasksInput, dim dashboard.Dimension) ([]dashboard.Group, error) {
	tasks := uc.filterAndSort(uc.snapshot(), input)

	var order []string
	emails := map[string]string{}
	buckets := map[string][]model.Task{}
	for _, task := range tasks {
		key := groupKey(task, dim)
		if key == "" {
			return nil, dashboard.ErrUnknownDimension
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], task)
		if dim == dashboard.DimensionAssignee {
			emails[key] = task.AssigneeEmail
		}
	}

	groups := make([]dashboard.Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, dashboard.Group{
			Key:   key,
			Email: emails[key],
			Tasks: buckets[key],
			Count: len(buckets[key]),
		})
	}

	if dim == dashboard.DimensionStatus {
		// Status groups follow lifecycle order, not size; within a bucket
		// the stable sort keeps input order.
		sort.SliceStable(groups, func(i, j int) bool {
			return statusBucket(groups[i].Key) < statusBucket(groups[j].Key)
		})
	} else {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Count > groups[j].Count
		})
	}
	return groups, nil
}

func groupKey(task model.Task, dim dashboard.Dimension) string {
	switch dim {
	case dashboard.DimensionAssignee:
		return task.Assignee
	case dashboard.DimensionDepartment:
		return task.Department
	case dashboard.DimensionCategory:
		return task.BICategory
	case dashboard.DimensionStatus:
		return task.Status
	default:
		return ""
	}
}

// taskLabels returns the labels a task contributes under, with the
// synthetic key for unlabeled tasks.
func taskLabels(task model.Task) []string {
	if len(task.Labels) == 0 {
		return []string{model.NoLabel}
	}
	return task.Labels
}

func (uc *implUseCase) SourceRollup(ctx context.Context, input dashboard.TasksInput) ([]dashboard.DepartmentRollup, error) {
	tasks := uc.filterAndSort(uc.snapshot(), input)
	return rollupDepartments(tasks), nil
}

func (uc *implUseCase) AssigneeSourceRollup(ctx context.Context, input dashboard.TasksInput) ([]dashboard.AssigneeRollup, error) {
	tasks := uc.filterAndSort(uc.snapshot(), input)

	var order []string
	emails := map[string]string{}
	byAssignee := map[string][]model.Task{}
	for _, task := range tasks {
		if _, seen := byAssignee[task.Assignee]; !seen {
			order = append(order, task.Assignee)
		}
		byAssignee[task.Assignee] = append(byAssignee[task.Assignee], task)
		emails[task.Assignee] = task.AssigneeEmail
	}

	rollups := make([]dashboard.AssigneeRollup, 0, len(order))
	for _, assignee := range order {
		departments := rollupDepartments(byAssignee[assignee])
		total := 0
		for _, d := range departments {
			total += d.TaskCount
		}
		rollups = append(rollups, dashboard.AssigneeRollup{
			Name:        assignee,
			Email:       emails[assignee],
			Departments: departments,
			TaskCount:   total,
		})
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TaskCount > rollups[j].TaskCount
	})
	return rollups, nil
}

// rollupDepartments builds the department→label→category hierarchy. A task
// contributes once per label it carries; counts sum descendant leaves.
func rollupDepartments(tasks []model.Task) []dashboard.DepartmentRollup {
	var deptOrder []string
	byDept := map[string][]model.Task{}
	for _, task := range tasks {
		if _, seen := byDept[task.Department]; !seen {
			deptOrder = append(deptOrder, task.Department)
		}
		byDept[task.Department] = append(byDept[task.Department], task)
	}

	rollups := make([]dashboard.DepartmentRollup, 0, len(deptOrder))
	for _, dept := range deptOrder {
		labels := rollupLabels(byDept[dept])
		total := 0
		for _, l := range labels {
			total += l.TaskCount
		}
		rollups = append(rollups, dashboard.DepartmentRollup{
			Name:      dept,
			Labels:    labels,
			TaskCount: total,
		})
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TaskCount > rollups[j].TaskCount
	})
	return rollups
}

func rollupLabels(tasks []model.Task) []dashboard.LabelRollup {
	var labelOrder []string
	byLabel := map[string][]model.Task{}
	for _, task := range tasks {
		for _, label := range taskLabels(task) {
			if _, seen := byLabel[label]; !seen {
				labelOrder = append(labelOrder, label)
			}
			byLabel[label] = append(byLabel[label], task)
		}
	}

	rollups := make([]dashboard.LabelRollup, 0, len(labelOrder))
	for _, label := range labelOrder {
		categories := rollupCategories(byLabel[label])
		total := 0
		for _, c := range categories {
			total += c.TaskCount
		}
		rollups = append(rollups, dashboard.LabelRollup{
			Name:       label,
			Categories: categories,
			TaskCount:  total,
		})
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TaskCount > rollups[j].TaskCount
	})
	return rollups
}

func rollupCategories(tasks []model.Task) []dashboard.CategoryRollup {
	var catOrder []string
	byCat := map[string][]model.Task{}
	for _, task := range tasks {
		if _, seen := byCat[task.BICategory]; !seen {
			catOrder = append(catOrder, task.BICategory)
		}
		byCat[task.BICategory] = append(byCat[task.BICategory], task)
	}

	rollups := make([]dashboard.CategoryRollup, 0, len(catOrder))
	for _, cat := range catOrder {
		rollups = append(rollups, dashboard.CategoryRollup{
			Name:      cat,
			Tasks:     byCat[cat],
			TaskCount: len(byCat[cat]),
		})
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TaskCount > rollups[j].TaskCount
	})
	return rollups
}

func (uc *implUseCase) LabelLeaderboard(ctx context.Context, input dashboard.TasksInput) ([]dashboard.LeaderboardEntry, error) {
	tasks := uc.filterAndSort(uc.snapshot(), input)

	var order []string
	totals := map[string]int{}
	perAssignee := map[string]map[string]int{}
	emails := map[string]string{}
	for _, task := range tasks {
		for _, label := range task.Labels {
			if _, seen := totals[label]; !seen {
				order = append(order, label)
				perAssignee[label] = map[string]int{}
			}
			totals[label]++
			perAssignee[label][task.Assignee]++
			emails[task.Assignee] = task.AssigneeEmail
		}
	}

	entries := make([]dashboard.LeaderboardEntry, 0, len(order))
	for _, label := range order {
		var assignees []dashboard.LeaderboardAssignee
		names := make([]string, 0, len(perAssignee[label]))
		for name := range perAssignee[label] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			assignees = append(assignees, dashboard.LeaderboardAssignee{
				Assignee: name,
				Email:    emails[name],
				Count:    perAssignee[label][name],
			})
		}
		sort.SliceStable(assignees, func(i, j int) bool {
			return assignees[i].Count > assignees[j].Count
		})
		entries = append(entries, dashboard.LeaderboardEntry{
			Label:      label,
			TotalTasks: totals[label],
			Assignees:  assignees,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalTasks > entries[j].TotalTasks
	})
	return entries, nil
}

func (uc *implUseCase) WorkloadByPerson(ctx context.Context) []dashboard.WorkloadEntry {
	tasks := uc.snapshot()

	totals := map[string]*dashboard.WorkloadEntry{}
	for _, task := range tasks {
		entry, ok := totals[task.Assignee]
		if !ok {
			entry = &dashboard.WorkloadEntry{Assignee: task.Assignee, Email: task.AssigneeEmail}
			totals[task.Assignee] = entry
		}
		entry.Total++
		entry.StoryPoints += task.StoryPoints
		if statusBucket(task.Status) == 3 {
			entry.Completed++
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]dashboard.WorkloadEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, *totals[name])
	}
	return entries
}
