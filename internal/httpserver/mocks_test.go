package httpserver

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pilmart-be/internal/category"
	"pilmart-be/internal/order"
	"pilmart-be/internal/product"
	"pilmart-be/internal/user"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) List(ctx context.Context, opts product.ListOptions) (*product.ListResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.ListResult), args.Error(1)
}

func (m *mockProductService) GetByID(ctx context.Context, id int) (*product.WithCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.WithCategory), args.Error(1)
}

func (m *mockProductService) AdminList(ctx context.Context, search string) ([]product.WithCategory, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.WithCategory), args.Error(1)
}

func (m *mockProductService) Create(ctx context.Context, in product.CreateInput) (*product.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductService) Update(ctx context.Context, id int, in product.UpdateInput) (*product.Product, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductService) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductService) ToggleStock(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, in order.PlaceOrderInput) (*order.PlaceOrderResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PlaceOrderResult), args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context, phone string) ([]order.Order, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderService) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) AdminList(ctx context.Context, status order.Status, date string) ([]order.Order, error) {
	args := m.Called(ctx, status, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, id int, to order.Status) error {
	args := m.Called(ctx, id, to)
	return args.Error(0)
}

func (m *mockOrderService) UpdateMemo(ctx context.Context, id int, memo string) error {
	args := m.Called(ctx, id, memo)
	return args.Error(0)
}

func (m *mockOrderService) ComputeStats(ctx context.Context) (*order.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Stats), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, name, phone, password, address string) (user.User, error) {
	args := m.Called(ctx, name, phone, password, address)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, phone, password string) (string, user.User, error) {
	args := m.Called(ctx, phone, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *mockUserService) GetByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id int, params user.UpdateProfileParams) (*user.User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
