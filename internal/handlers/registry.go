package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	InternshipHandler  *InternshipHandler
	ApplicationHandler *ApplicationHandler
	ForumHandler       *ForumHandler
	ReportHandler      *ReportHandler
	StatsHandler       *StatsHandler
}
