package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pilmart-be/internal/order"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Register(r chi.Router) {
	r.Post("/", h.placeOrder)
	r.Get("/", h.listOrders)
	r.Get("/{orderNumber}", h.getOrder)
}

type placeOrderRequest struct {
	UserName        string            `json:"user_name"`
	UserPhone       string            `json:"user_phone"`
	Address         string            `json:"address"`
	AddressDetail   string            `json:"address_detail"`
	DeliveryType    string            `json:"delivery_type"`
	DeliveryRequest string            `json:"delivery_request"`
	PaymentMethod   string            `json:"payment_method"`
	Items           []order.ItemInput `json:"items"`
	TotalAmount     int               `json:"total_amount"`
}

func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if !decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.UserName) == "" || strings.TrimSpace(req.UserPhone) == "" {
		fail(w, http.StatusBadRequest, "name and phone are required")
		return
	}
	if len(req.Items) == 0 {
		fail(w, http.StatusBadRequest, "order has no items")
		return
	}

	res, err := h.orders.PlaceOrder(r.Context(), order.PlaceOrderInput{
		UserName:        req.UserName,
		UserPhone:       req.UserPhone,
		Address:         req.Address,
		AddressDetail:   req.AddressDetail,
		DeliveryType:    order.DeliveryType(req.DeliveryType),
		DeliveryRequest: req.DeliveryRequest,
		PaymentMethod:   order.PaymentMethod(req.PaymentMethod),
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
	})
	if err != nil {
		if errors.Is(err, order.ErrMinimumOrderNotMet) {
			fail(w, http.StatusBadRequest, "minimum order amount is 10,000 won")
			return
		}
		fail(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"order_number": res.OrderNumber,
		"order_id":     res.OrderID,
		"delivery_fee": res.DeliveryFee,
		"final_amount": res.FinalAmount,
	})
}

func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		if errors.Is(err, order.ErrPhoneRequired) {
			fail(w, http.StatusBadRequest, "phone number is required")
			return
		}
		fail(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": orders})
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.GetByNumber(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			fail(w, http.StatusNotFound, "order not found")
			return
		}
		fail(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "order": o})
}
