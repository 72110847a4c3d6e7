package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/domain"
)

type SQLFeedbackRepository struct {
	db *sql.DB
}

func NewSQLFeedbackRepository(db *sql.DB) *SQLFeedbackRepository {
	return &SQLFeedbackRepository{db: db}
}

func (r *SQLFeedbackRepository) CreateFeedback(ctx context.Context, feedback *domain.Feedback) error {
	query := `
        INSERT INTO feedback (
            feedback_time, feedback_date, satisfaction_rating, shipping_delivery,
            seller_cooperation, overall_rating, seller_id, buyer_id
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	res, err := r.db.ExecContext(ctx, query,
		feedback.Time, feedback.Date.Format(domain.DateLayout),
		feedback.SatisfactionRating, feedback.ShippingDelivery,
		feedback.SellerCooperation, feedback.OverallRating,
		feedback.SellerID, feedback.BuyerID)
	if err != nil {
		return fmt.Errorf("insert feedback for seller %d: %w", feedback.SellerID, classify(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert feedback for seller %d: %w", feedback.SellerID, classify(err))
	}
	feedback.ID = id
	return nil
}
