package services

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/apperr"
	"github.com/wbonfim/DeliveryApp/repository"
)

// OrderService turns carts into priced, immutable orders and drives the
// status lifecycle.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo, UserRepo: userRepo}
}

var paymentMethods = map[string]bool{
	entity.PaymentMethodCreditCard: true,
	entity.PaymentMethodDebitCard:  true,
	entity.PaymentMethodPix:        true,
	entity.PaymentMethodCash:       true,
}

type PlaceOrderIn struct {
	RestaurantID  uint   `json:"restaurantId" binding:"required"`
	AddressID     uint   `json:"addressId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Notes         string `json:"notes"`
}

// PlaceOrder snapshots the (user, restaurant) cart into an order: items are
// copied with their captured prices, the delivery address is copied from the
// user's address book, total = subtotal + the restaurant's delivery fee as
// of now, and the source cart is deleted. All of it in one transaction.
func (s *OrderService) PlaceOrder(userID uint, in *PlaceOrderIn) (*entity.Order, error) {
	if !paymentMethods[in.PaymentMethod] {
		return nil, apperr.New(apperr.KindValidation, "unknown payment method")
	}

	rest, err := s.RestRepo.FindByID(in.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "restaurant not found")
		}
		return nil, apperr.Internal(err)
	}
	if !rest.IsActive || !rest.IsOnline {
		return nil, apperr.ErrRestaurantOffline
	}

	addr, err := s.UserRepo.GetAddress(userID, in.AddressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "address not found")
		}
		return nil, apperr.Internal(err)
	}

	var placed entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read the cart inside the transaction so concurrent cart edits
		// cannot slip between pricing and deletion.
		var cart entity.Cart
		err := tx.Where("user_id = ? AND restaurant_id = ?", userID, in.RestaurantID).
			Preload("Items").First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrEmptyCart
		}
		if err != nil {
			return apperr.Internal(err)
		}
		if len(cart.Items) == 0 {
			return apperr.ErrEmptyCart
		}

		subtotal := cart.Total()
		if subtotal < rest.MinimumOrder {
			return apperr.ErrBelowMinimumOrder
		}

		number, err := s.nextOrderNumber(tx)
		if err != nil {
			return apperr.Internal(err)
		}

		order := entity.Order{
			OrderNumber:  number,
			UserID:       userID,
			RestaurantID: rest.ID,
			Status:       entity.OrderStatusPending,

			Subtotal:    subtotal,
			DeliveryFee: rest.DeliveryFee,
			Total:       subtotal + rest.DeliveryFee,

			DeliveryStreet:       addr.Street,
			DeliveryNumber:       addr.Number,
			DeliveryComplement:   addr.Complement,
			DeliveryNeighborhood: addr.Neighborhood,
			DeliveryCity:         addr.City,
			DeliveryState:        addr.State,
			DeliveryZipCode:      addr.ZipCode,

			Notes:         in.Notes,
			PaymentMethod: in.PaymentMethod,
			PaymentStatus: entity.PaymentStatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return apperr.Internal(err)
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
				Notes:      it.Notes,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return apperr.Internal(err)
			}
			order.Items = append(order.Items, oi)
		}

		if err := s.CartRepo.DeleteCart(tx, cart.ID); err != nil {
			return apperr.Internal(err)
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &placed, nil
}

// nextOrderNumber generates ORD-YYYYMMDD-XXXXXX and retries the rare
// suffix collision; the unique index is the final arbiter.
func (s *OrderService) nextOrderNumber(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		u := uuid.New()
		suffix := strings.ToUpper(hex.EncodeToString(u[:3]))
		number := fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)

		exists, err := s.Repo.OrderNumberExists(tx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", errors.New("could not generate a unique order number")
}

// AdvanceStatus moves an order along the lifecycle graph. The restaurant
// owner and admins may perform any legal transition; the customer may only
// cancel their own order while it is still pending. The update is guarded on
// the expected current status, so a concurrent winner leaves the loser with
// InvalidTransition instead of a silent double-write.
func (s *OrderService) AdvanceStatus(actorID uint, role string, orderID uint, target string) error {
	if !ValidOrderStatus(target) {
		return apperr.New(apperr.KindValidation, "unknown order status")
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrOrderNotFound
		}
		return apperr.Internal(err)
	}

	if err := s.authorizeTransition(actorID, role, o, target); err != nil {
		return err
	}

	if !CanTransition(o.Status, target) {
		return apperr.ErrInvalidTransition
	}

	extra := map[string]any{}
	now := time.Now().UTC()
	if target == entity.OrderStatusConfirmed && o.ConfirmedAt == nil {
		extra["confirmed_at"] = now
	}
	if target == entity.OrderStatusDelivered {
		extra["delivered_at"] = now
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target, extra)
		if err != nil {
			return apperr.Internal(err)
		}
		if affected == 0 {
			return apperr.ErrInvalidTransition
		}
		return nil
	})
}

func (s *OrderService) authorizeTransition(actorID uint, role string, o *entity.Order, target string) error {
	if role == entity.UserTypeAdmin {
		return nil
	}
	owned, err := s.RestRepo.IsOwnedBy(o.RestaurantID, actorID)
	if err != nil {
		return apperr.Internal(err)
	}
	if owned {
		return nil
	}
	// customers may only back out before the restaurant confirms
	if o.UserID == actorID && target == entity.OrderStatusCancelled &&
		o.Status == entity.OrderStatusPending {
		return nil
	}
	return apperr.New(apperr.KindForbidden, "forbidden")
}

var paymentStatuses = map[string]bool{
	entity.PaymentStatusPending: true,
	entity.PaymentStatusPaid:    true,
	entity.PaymentStatusFailed:  true,
}

// RecordPayment updates the payment state only. A failed charge does not
// cancel the order; cancellation stays an explicit operator action.
func (s *OrderService) RecordPayment(actorID uint, role string, orderID uint, status string) error {
	if !paymentStatuses[status] {
		return apperr.New(apperr.KindValidation, "unknown payment status")
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrOrderNotFound
		}
		return apperr.Internal(err)
	}

	if role != entity.UserTypeAdmin {
		owned, err := s.RestRepo.IsOwnedBy(o.RestaurantID, actorID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !owned {
			return apperr.New(apperr.KindForbidden, "forbidden")
		}
	}

	if _, err := s.Repo.UpdatePaymentStatus(o.ID, status); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ---------------- Listing & detail ----------------

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	out, err := s.Repo.ListOrdersForUser(userID, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrOrderNotFound
		}
		return nil, apperr.Internal(err)
	}
	return o, nil
}

type RestaurantOrdersOut struct {
	Items []repository.RestaurantOrderSummary `json:"items"`
	Total int64                               `json:"total"`
	Page  int                                 `json:"page"`
	Limit int                                 `json:"limit"`
}

func (s *OrderService) ListForRestaurant(actorID uint, role string, restID uint, status string, page, limit int) (*RestaurantOrdersOut, error) {
	if role != entity.UserTypeAdmin {
		owned, err := s.RestRepo.IsOwnedBy(restID, actorID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if !owned {
			return nil, apperr.New(apperr.KindForbidden, "forbidden")
		}
	}
	if status != "" && !ValidOrderStatus(status) {
		return nil, apperr.New(apperr.KindValidation, "unknown order status")
	}

	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &RestaurantOrdersOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
