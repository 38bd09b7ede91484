package store

import (
	"sort"

	"gitops-dashboard/internal/model"
)

// CreateActivity appends an entry to the audit trail and stamps its
// timestamp. Entries are never updated or deleted; with all mutations
// sequenced through the store mutex the timestamps are non-decreasing
// in insertion order.
func (s *Store) CreateActivity(activity *model.Activity) *model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := *activity
	a.ID = s.activityID
	s.activityID++
	a.Timestamp = s.now()
	a.Details = cloneDetails(activity.Details)
	s.activities = append(s.activities, &a)

	out := a
	out.Details = cloneDetails(a.Details)
	return &out
}

// ListActivities returns activities sorted by timestamp descending;
// limit > 0 truncates the result after sorting.
func (s *Store) ListActivities(limit int) []*model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out := *a
		out.Details = cloneDetails(a.Details)
		all = append(all, &out)
	}

	// Equal timestamps fall back to insertion order, newest first.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].ID > all[j].ID
		}
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
