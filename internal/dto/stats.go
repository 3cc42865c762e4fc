package dto

// MarketplaceStats is the aggregate statistics response.
type MarketplaceStats struct {
	TotalInternships     int64            `json:"totalInternships"`
	VisibleInternships   int64            `json:"visibleInternships"`
	TotalApplications    int64            `json:"totalApplications"`
	TotalMessages        int64            `json:"totalMessages"`
	OpenReports          int64            `json:"openReports"`
	UsersByRole          map[string]int64 `json:"usersByRole"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	InternshipsByType    map[string]int64 `json:"internshipsByType"`
	TopSectors           []SectorCount    `json:"topSectors"`
}

type SectorCount struct {
	Sector string `json:"sector"`
	Count  int64  `json:"count"`
}
