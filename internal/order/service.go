package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pilmart-be/internal/logger"
	"pilmart-be/internal/product"
	"pilmart-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error)
	ListOrders(ctx context.Context, phone string) ([]Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	AdminList(ctx context.Context, status Status, date string) ([]Order, error)
	UpdateStatus(ctx context.Context, id int, to Status) error
	UpdateMemo(ctx context.Context, id int, memo string) error
	ComputeStats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

// PlaceOrder validates the declared subtotal, snapshots line items against
// the current catalog, persists the order and then decrements stock. The
// two writes hit separate documents; each is serialized on its own, but no
// transaction spans both.
func (s *service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int("item_count", len(in.Items)),
		zap.String("delivery_type", string(in.DeliveryType)),
	)

	// ---------- VALIDATION ----------

	if in.TotalAmount < MinimumOrderAmount {
		log.Warn("order below minimum amount", zap.Int("total_amount", in.TotalAmount))
		return nil, ErrMinimumOrderNotMet
	}

	fee := deliveryFeeFor(in.DeliveryType, in.TotalAmount)

	address := in.Address
	if in.AddressDetail != "" {
		address += " " + in.AddressDetail
	}

	// ---------- LINE-ITEM SNAPSHOT ----------

	items := make([]Item, 0, len(in.Items))
	for _, it := range in.Items {
		snap := Item{ProductID: it.ProductID, Quantity: it.Quantity}

		p, err := s.products.GetByID(ctx, it.ProductID)
		switch {
		case err == nil:
			snap.ProductName = p.Name
			snap.Price = p.Price
		case errors.Is(err, product.ErrProductNotFound):
			// unknown product: keep the zero-value snapshot
			log.Warn("order references unknown product", zap.Int("product_id", it.ProductID))
		default:
			return nil, fmt.Errorf("snapshot product %d: %w", it.ProductID, err)
		}

		items = append(items, snap)
	}

	var userID *int
	if id, ok := utils.GetUserIDFromContext(ctx); ok {
		userID = &id
	}

	o := &Order{
		UserID:          userID,
		UserName:        in.UserName,
		UserPhone:       in.UserPhone,
		Address:         address,
		DeliveryType:    in.DeliveryType,
		DeliveryRequest: in.DeliveryRequest,
		PaymentMethod:   in.PaymentMethod,
		TotalAmount:     in.TotalAmount,
		DeliveryFee:     fee,
		Status:          StatusPending,
		Items:           items,
	}

	// ---------- PERSISTENCE ----------

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	deductions := make([]product.Deduction, 0, len(in.Items))
	for _, it := range in.Items {
		deductions = append(deductions, product.Deduction{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if err := s.products.DecrementStock(ctx, deductions); err != nil {
		// The order is already on file; stock is now inflated relative to it.
		log.Error("failed to decrement stock after order write",
			zap.String("order_number", o.OrderNumber), zap.Error(err))
		return nil, err
	}

	log.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.Int("order_id", o.ID),
		zap.Int("delivery_fee", fee),
	)

	return &PlaceOrderResult{
		OrderNumber: o.OrderNumber,
		OrderID:     o.ID,
		DeliveryFee: fee,
		FinalAmount: in.TotalAmount + fee,
	}, nil
}

// ListOrders returns the caller's orders: by user id when authenticated,
// otherwise by the supplied phone number.
func (s *service) ListOrders(ctx context.Context, phone string) ([]Order, error) {
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		return s.repo.ListByUser(ctx, userID)
	}
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	return s.repo.ListByPhone(ctx, phone)
}

func (s *service) GetByNumber(ctx context.Context, number string) (*Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *service) AdminList(ctx context.Context, status Status, date string) ([]Order, error) {
	return s.repo.ListAdmin(ctx, status, date)
}

// UpdateStatus enforces the per-delivery-type transition table before
// writing the new status.
func (s *service) UpdateStatus(ctx context.Context, id int, to Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.Int("order_id", id),
		zap.String("to", string(to)),
	)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanTransition(o.DeliveryType, o.Status, to) {
		log.Warn("rejected status transition", zap.String("from", string(o.Status)))
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		log.Error("failed to update status", zap.Error(err))
		return err
	}

	log.Info("order status updated", zap.String("from", string(o.Status)))
	return nil
}

func (s *service) UpdateMemo(ctx context.Context, id int, memo string) error {
	return s.repo.UpdateMemo(ctx, id, memo)
}

// ComputeStats aggregates the whole order collection for the admin
// dashboard. All date bucketing is UTC.
func (s *service) ComputeStats(ctx context.Context) (*Stats, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load orders for stats", zap.Error(err))
		return nil, err
	}

	stats := calcStats(orders, time.Now().UTC())
	return &stats, nil
}
