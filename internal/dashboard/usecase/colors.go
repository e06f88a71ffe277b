package usecase

import (
	"context"
	"sort"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

// chartPalette is assigned round-robin over the sorted distinct keys of a
// dimension.
var chartPalette = []string{
	"#3b82f6", "#8b5cf6", "#ec4899", "#f97316", "#10b981",
	"#06b6d4", "#f59e0b", "#ef4444", "#6366f1", "#14b8a6",
}

// neutralColor overrides the palette for placeholder keys.
const neutralColor = "#9ca3af"

func (uc *implUseCase) Colors(ctx context.Context, dim dashboard.Dimension) (map[string]string, error) {
	tasks := uc.snapshot()

	seen := map[string]bool{}
	keys := []string{}
	for _, task := range tasks {
		key := groupKey(task, dim)
		if key == "" {
			return nil, dashboard.ErrUnknownDimension
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return assignColors(keys), nil
}

// assignColors is a pure function of the key set: the keys are sorted
// before assignment so insertion order never changes the mapping.
func assignColors(keys []string) map[string]string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	colors := make(map[string]string, len(sorted))
	for i, key := range sorted {
		if key == model.NoValue || key == model.UnassignedName {
			colors[key] = neutralColor
			continue
		}
		colors[key] = chartPalette[i%len(chartPalette)]
	}
	return colors
}
