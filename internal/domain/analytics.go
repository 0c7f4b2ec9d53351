package domain

// Counter scopes for the analytics table. Each scope holds keyed counters:
// "general" has a single "total_visits" key, "blogs" is keyed by post slug,
// "resumes" by resume role id.
const (
	CounterScopeGeneral = "general"
	CounterScopeBlogs   = "blogs"
	CounterScopeResumes = "resumes"

	CounterKeyTotalVisits = "total_visits"
)

type AnalyticsSummary struct {
	TotalVisits     int64            `json:"total_visits"`
	BlogViews       map[string]int64 `json:"blog_views"`
	ResumeDownloads map[string]int64 `json:"resume_downloads"`
}
