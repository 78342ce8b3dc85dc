package usecase

import (
	"context"

	"orientalgroup/internal/dto"
)

type AnalyticsRepository interface {
	UserStats(ctx context.Context) (dto.UserStats, error)
	ContentStats(ctx context.Context) (dto.ContentStats, error)
	ContactStats(ctx context.Context) (dto.ContactStats, error)
	MonthlyUserSignups(ctx context.Context) ([]dto.MonthlyCount, error)
	MonthlyContacts(ctx context.Context) ([]dto.MonthlyCount, error)
	BlogPostsByCategory(ctx context.Context) ([]dto.CategoryCount, error)
}

type AnalyticsUseCase struct {
	stats AnalyticsRepository
}

func NewAnalyticsUseCase(stats AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{stats: stats}
}

// Dashboard assembles the full admin dashboard payload in one call.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context) (*dto.AnalyticsResponse, error) {
	userStats, err := uc.stats.UserStats(ctx)
	if err != nil {
		return nil, err
	}

	contentStats, err := uc.stats.ContentStats(ctx)
	if err != nil {
		return nil, err
	}

	contactStats, err := uc.stats.ContactStats(ctx)
	if err != nil {
		return nil, err
	}

	monthlyUsers, err := uc.stats.MonthlyUserSignups(ctx)
	if err != nil {
		return nil, err
	}

	monthlyContacts, err := uc.stats.MonthlyContacts(ctx)
	if err != nil {
		return nil, err
	}

	blogByCategory, err := uc.stats.BlogPostsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		UserStats:       userStats,
		ContentStats:    contentStats,
		ContactStats:    contactStats,
		MonthlyUsers:    monthlyUsers,
		MonthlyContacts: monthlyContacts,
		BlogByCategory:  blogByCategory,
	}, nil
}
