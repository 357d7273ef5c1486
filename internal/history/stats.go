package history

import (
	"time"

	"kps/internal/platform"
)

type PlatformStats struct {
	Created int `json:"created"`
	Solved  int `json:"solved"`
}

type Stats struct {
	Total          int                                 `json:"total"`
	Solved         int                                 `json:"solved"`
	ByPlatform     map[platform.Platform]PlatformStats `json:"by_platform"`
	CreatedLast7d  int                                 `json:"created_last_7_days"`
	CreatedPrev7d  int                                 `json:"created_prev_7_days"`
	RecentActivity []Entry                             `json:"recent_activity"`
}

const recentLimit = 10

// Summarize counts created and solved entries overall, per platform and over
// the two most recent seven-day windows ending at now.
func (l Log) Summarize(now time.Time) Stats {
	st := Stats{ByPlatform: map[platform.Platform]PlatformStats{}}
	for _, p := range platform.All() {
		st.ByPlatform[p] = PlatformStats{}
	}
	weekAgo := now.Add(-7 * 24 * time.Hour)
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour)

	for _, e := range l.Entries {
		st.Total++
		ps := st.ByPlatform[e.Platform]
		ps.Created++
		if e.Solved {
			st.Solved++
			ps.Solved++
		}
		st.ByPlatform[e.Platform] = ps

		switch {
		case !e.Timestamp.Before(weekAgo):
			st.CreatedLast7d++
		case !e.Timestamp.Before(twoWeeksAgo):
			st.CreatedPrev7d++
		}
	}

	for i := len(l.Entries) - 1; i >= 0 && len(st.RecentActivity) < recentLimit; i-- {
		st.RecentActivity = append(st.RecentActivity, l.Entries[i])
	}
	return st
}
