package viewmodel

// Tab identifies a dashboard tab.
type Tab int

const (
	// TabScan is the upload and results tab.
	TabScan Tab = iota
	// TabStats is the detailed statistics tab.
	TabStats
	// TabHistory is the scan history tab.
	TabHistory
	// TabAchievements is the achievement board tab.
	TabAchievements
)

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabScan, TabStats, TabHistory, TabAchievements}
}

// AppView represents the entire application view model.
type AppView struct {
	Scan          ScanView
	StatsDetail   StatsDetailView
	History       HistoryView
	Achievements  AchievementBoard
	Coach         CoachView
	StatusMessage string
	StatsBar      StatsBarView
	ActiveTab     Tab
}

// StatsBarView is the always-visible counter strip.
type StatsBarView struct {
	Total        int
	ThisWeek     int
	Achievements int
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % Tab(len(Tabs()))
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	n := Tab(len(Tabs()))
	return (t + n - 1) % n
}
