package repositories

import (
	"gorm.io/gorm"

	"stagelink_backend/internal/dto"
	"stagelink_backend/internal/models"
)

type StatsRepository interface {
	GetMarketplaceStats(topSectors int) (*dto.MarketplaceStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

type kindCount struct {
	Kind  string
	Count int64
}

func (r *statsRepository) GetMarketplaceStats(topSectors int) (*dto.MarketplaceStats, error) {
	stats := &dto.MarketplaceStats{
		UsersByRole:          make(map[string]int64),
		ApplicationsByStatus: make(map[string]int64),
		InternshipsByType:    make(map[string]int64),
	}

	if err := r.db.Model(&models.Internship{}).Count(&stats.TotalInternships).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Internship{}).Where("is_visible = ?", true).
		Count(&stats.VisibleInternships).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Application{}).Count(&stats.TotalApplications).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Message{}).Count(&stats.TotalMessages).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Report{}).Where("status = ?", models.ReportStatusOpen).
		Count(&stats.OpenReports).Error; err != nil {
		return nil, err
	}

	var roles []kindCount
	if err := r.db.Model(&models.User{}).
		Select("role AS kind, count(*) AS count").Group("role").
		Scan(&roles).Error; err != nil {
		return nil, err
	}
	for _, rc := range roles {
		stats.UsersByRole[rc.Kind] = rc.Count
	}

	var statuses []kindCount
	if err := r.db.Model(&models.Application{}).
		Select("status AS kind, count(*) AS count").Group("status").
		Scan(&statuses).Error; err != nil {
		return nil, err
	}
	for _, sc := range statuses {
		stats.ApplicationsByStatus[sc.Kind] = sc.Count
	}

	var types []kindCount
	if err := r.db.Model(&models.Internship{}).
		Select("type AS kind, count(*) AS count").Group("type").
		Scan(&types).Error; err != nil {
		return nil, err
	}
	for _, tc := range types {
		stats.InternshipsByType[tc.Kind] = tc.Count
	}

	var sectors []kindCount
	if err := r.db.Model(&models.Internship{}).
		Select("sector AS kind, count(*) AS count").
		Where("sector <> ''").Group("sector").
		Order("count DESC").Limit(topSectors).
		Scan(&sectors).Error; err != nil {
		return nil, err
	}
	for _, sc := range sectors {
		stats.TopSectors = append(stats.TopSectors, dto.SectorCount{Sector: sc.Kind, Count: sc.Count})
	}

	return stats, nil
}
