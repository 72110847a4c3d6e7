package services

import (
	"context"
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"
)

type FeedbackService struct {
	repo domain.FeedbackRepository
	log  logger.Logger
	now  func() time.Time
}

func NewFeedbackService(repo domain.FeedbackRepository, log logger.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, log: log, now: time.Now}
}

// AddFeedback stamps feedback with the current date and time of day and
// stores it. Whether buyer and seller ever traded is not checked.
func (s *FeedbackService) AddFeedback(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error) {
	now := s.now()
	feedback.ID = 0
	feedback.Time = now.Format(domain.TimeOfDayLayout)
	feedback.Date = domain.DateOf(now)

	if err := s.repo.CreateFeedback(ctx, &feedback); err != nil {
		s.log.Error("Failed to add feedback",
			"seller_id", feedback.SellerID,
			"buyer_id", feedback.BuyerID,
			"error", err)
		return nil, err
	}

	s.log.Info("Feedback added", "feedback_id", feedback.ID, "seller_id", feedback.SellerID)
	return &feedback, nil
}
