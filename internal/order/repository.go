package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"pilmart-be/internal/store"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	ListByUser(ctx context.Context, userID int) ([]Order, error)
	ListByPhone(ctx context.Context, phone string) ([]Order, error)
	ListAdmin(ctx context.Context, status Status, date string) ([]Order, error)
	UpdateStatus(ctx context.Context, id int, to Status) error
	UpdateMemo(ctx context.Context, id int, memo string) error
}

type repository struct {
	orders *store.Collection[Order]
}

func NewRepository(orders *store.Collection[Order]) Repository {
	return &repository{orders: orders}
}

// Create assigns the order's id, order number and creation time and appends
// it. Number allocation counts today's orders inside the writer critical
// section, so two concurrent submissions cannot draw the same suffix.
func (r *repository) Create(ctx context.Context, o *Order) error {
	return r.orders.Update(func(orders []Order) ([]Order, error) {
		now := time.Now().UTC()
		prefix := now.Format("20060102")

		seq := 1
		maxID := 0
		for _, existing := range orders {
			if strings.HasPrefix(existing.OrderNumber, prefix) {
				seq++
			}
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}

		o.ID = maxID + 1
		o.OrderNumber = fmt.Sprintf("%s-%04d", prefix, seq)
		o.CreatedAt = now

		return append(orders, *o), nil
	})
}

func (r *repository) GetAll(ctx context.Context) ([]Order, error) {
	return r.orders.Load()
}

func (r *repository) GetByID(ctx context.Context, id int) (*Order, error) {
	orders, err := r.orders.Load()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *repository) GetByNumber(ctx context.Context, number string) (*Order, error) {
	orders, err := r.orders.Load()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].OrderNumber == number {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	return r.list(func(o Order) bool {
		return o.UserID != nil && *o.UserID == userID
	})
}

func (r *repository) ListByPhone(ctx context.Context, phone string) ([]Order, error) {
	return r.list(func(o Order) bool {
		return o.UserPhone == phone
	})
}

// ListAdmin filters by status and/or creation date (YYYY-MM-DD); empty
// arguments match everything.
func (r *repository) ListAdmin(ctx context.Context, status Status, date string) ([]Order, error) {
	return r.list(func(o Order) bool {
		if status != "" && o.Status != status {
			return false
		}
		if date != "" && o.CreatedAt.UTC().Format("2006-01-02") != date {
			return false
		}
		return true
	})
}

func (r *repository) UpdateStatus(ctx context.Context, id int, to Status) error {
	return r.orders.Update(func(orders []Order) ([]Order, error) {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = to
				return orders, nil
			}
		}
		return nil, ErrOrderNotFound
	})
}

func (r *repository) UpdateMemo(ctx context.Context, id int, memo string) error {
	return r.orders.Update(func(orders []Order) ([]Order, error) {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].AdminMemo = memo
				return orders, nil
			}
		}
		return nil, ErrOrderNotFound
	})
}

// list returns matching orders sorted newest first.
func (r *repository) list(match func(Order) bool) ([]Order, error) {
	orders, err := r.orders.Load()
	if err != nil {
		return nil, err
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if match(o) {
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
