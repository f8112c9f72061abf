package services

import (
	"context"
	"time"

	resp "tourly/internal/models/response_models"
	"tourly/internal/repositories"
	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

const newAccountWindow = 30 * 24 * time.Hour

type DashboardService interface {
	BuildSummary(ctx context.Context, identity auth.Identity) (*resp.DashboardReport, error)
	CheckoutContext(ctx context.Context, identity auth.Identity) (*resp.CheckoutContext, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

func (s *dashboardService) BuildSummary(ctx context.Context, identity auth.Identity) (*resp.DashboardReport, error) {
	if err := auth.Authorize(identity, auth.OpAdminArea); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	report := &resp.DashboardReport{GeneratedAt: now}

	counters := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&report.Totals.Accounts, s.repo.CountTotalAccounts},
		{&report.Totals.Categories, s.repo.CountCategories},
		{&report.Totals.Destinations, s.repo.CountDestinations},
		{&report.Totals.Attractions, s.repo.CountAttractions},
		{&report.Totals.Hotels, s.repo.CountHotels},
		{&report.Totals.Reviews, s.repo.CountReviews},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, utils.Storage(err)
		}
		*c.dst = n
	}

	newAccounts, err := s.repo.CountNewAccounts(ctx, now.Add(-newAccountWindow))
	if err != nil {
		return nil, utils.Storage(err)
	}
	report.NewAccounts = newAccounts

	return report, nil
}

func (s *dashboardService) CheckoutContext(_ context.Context, identity auth.Identity) (*resp.CheckoutContext, error) {
	if err := auth.Authorize(identity, auth.OpCheckout); err != nil {
		return nil, err
	}
	return &resp.CheckoutContext{
		UserID:    identity.SubjectID.String(),
		Role:      string(identity.Role),
		ExpiresAt: identity.ExpiresAt,
	}, nil
}
