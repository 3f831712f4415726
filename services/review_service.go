package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/apperr"
	"github.com/wbonfim/DeliveryApp/repository"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	RestRepo  *repository.RestaurantRepository
	OrderRepo *repository.OrderRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, restRepo *repository.RestaurantRepository, orderRepo *repository.OrderRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, RestRepo: restRepo, OrderRepo: orderRepo}
}

type SubmitReviewIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	OrderID      *uint  `json:"orderId"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}

// Submit stores the review and folds the rating into the restaurant's
// running average in the same transaction, so rating and total_reviews never
// drift from the review rows.
func (s *ReviewService) Submit(userID uint, in *SubmitReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.ErrInvalidRating
	}

	if _, err := s.RestRepo.FindByID(in.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "restaurant not found")
		}
		return nil, apperr.Internal(err)
	}

	if in.OrderID != nil {
		o, err := s.OrderRepo.GetOrder(*in.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.ErrOrderNotEligible
			}
			return nil, apperr.Internal(err)
		}
		if o.UserID != userID || o.RestaurantID != in.RestaurantID ||
			o.Status != entity.OrderStatusDelivered {
			return nil, apperr.ErrOrderNotEligible
		}

		reviewed, err := s.Repo.ExistsForOrder(userID, o.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if reviewed {
			return nil, apperr.New(apperr.KindConflict, "order already reviewed")
		}
	}

	rev := &entity.Review{
		UserID:       userID,
		RestaurantID: in.RestaurantID,
		OrderID:      in.OrderID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rev); err != nil {
			return err
		}
		return s.RestRepo.ApplyReview(tx, in.RestaurantID, in.Rating)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rev, nil
}

type RestaurantReviewsOut struct {
	Items        []entity.Review `json:"items"`
	Rating       float64         `json:"rating"`
	TotalReviews int             `json:"totalReviews"`
}

func (s *ReviewService) ListForRestaurant(restID uint, limit, offset int) (*RestaurantReviewsOut, error) {
	rest, err := s.RestRepo.FindByID(restID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "restaurant not found")
		}
		return nil, apperr.Internal(err)
	}

	items, err := s.Repo.ListForRestaurant(restID, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &RestaurantReviewsOut{
		Items:        items,
		Rating:       rest.Rating,
		TotalReviews: rest.TotalReviews,
	}, nil
}

func (s *ReviewService) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	items, err := s.Repo.ListForUser(userID, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}
