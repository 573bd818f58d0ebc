package orders

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avGenie/go-bookstore-inventory/internal/app/controller/http/orders/mock"
	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	err_usecase "github.com/avGenie/go-bookstore-inventory/internal/app/usecase/errors"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(order Order) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/orders", order.SubmitOrder())
	r.Get("/api/orders/{id}", order.GetOrder())
	r.Post("/api/orders/{id}/process", order.ProcessOrder())
	r.Post("/api/orders/{id}/ship", order.ShipOrder())
	r.Post("/api/orders/{id}/cancel", order.CancelOrder())

	return r
}

func TestSubmitOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)

	type want struct {
		statusCode int
		outputBody string
	}
	tests := []struct {
		name         string
		body         string
		isSubmit     bool
		submission   entity.OrderSubmission
		submitErr    error
		wantCustomer string

		want want
	}{
		{
			name:     "order created",
			body:     `{"customer":"c1","book":"b1","quantity":2}`,
			isSubmit: true,
			submission: entity.OrderSubmission{
				OrderID:    "o1",
				CustomerID: "c1",
				Status:     entity.StatusNewOrder,
				BookID:     "b1",
				Quantity:   2,
				Price:      decimal.RequireFromString("12.50"),
			},
			wantCustomer: "c1",

			want: want{
				statusCode: http.StatusCreated,
				outputBody: `{"orderID":"o1","customerID":"c1","status":"New","book":"b1","quantity":2,"price":"12.5","message":"Order o1 created for book b1!"}`,
			},
		},
		{
			name:      "insufficient stock",
			body:      `{"book":"b1","quantity":9}`,
			isSubmit:  true,
			submitErr: err_usecase.InsufficientStock(3, 9),

			want: want{
				statusCode: http.StatusConflict,
				outputBody: `{"error":"only 3 items left, but requested 9"}`,
			},
		},
		{
			name:      "unknown book",
			body:      `{"book":"b9","quantity":1}`,
			isSubmit:  true,
			submitErr: err_usecase.NotFound("book with ID b9 not found"),

			want: want{
				statusCode: http.StatusNotFound,
				outputBody: `{"error":"book with ID b9 not found"}`,
			},
		},
		{
			name:      "invalid quantity",
			body:      `{"book":"b1","quantity":0}`,
			isSubmit:  true,
			submitErr: err_usecase.InvalidInput("quantity must be a positive number"),

			want: want{
				statusCode: http.StatusBadRequest,
				outputBody: `{"error":"quantity must be a positive number"}`,
			},
		},
		{
			name:      "internal error is hidden",
			body:      `{"book":"b1","quantity":1}`,
			isSubmit:  true,
			submitErr: errors.New("connection refused"),

			want: want{
				statusCode: http.StatusInternalServerError,
				outputBody: `{"error":"internal error"}`,
			},
		},
		{
			name: "malformed body",
			body: `{"book":`,

			want: want{
				statusCode: http.StatusBadRequest,
				outputBody: `{"error":"request body is invalid"}`,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isSubmit {
				s.EXPECT().SubmitOrder(gomock.Any(), test.wantCustomer, gomock.Any(), gomock.Any()).Return(test.submission, test.submitErr)
			} else {
				s.EXPECT().SubmitOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			newRouter(New(s)).ServeHTTP(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

			bodyResult, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.JSONEq(t, test.want.outputBody, string(bodyResult))
		})
	}
}

func TestChangeOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)

	type want struct {
		statusCode int
		outputBody string
	}
	tests := []struct {
		name   string
		path   string
		expect func()

		want want
	}{
		{
			name: "process",
			path: "/api/orders/o1/process",
			expect: func() {
				s.EXPECT().ProcessOrder(gomock.Any(), "o1").Return(entity.OrderState{ID: "o1", Status: entity.StatusProcessedOrder}, nil)
			},
			want: want{
				statusCode: http.StatusOK,
				outputBody: `{"id":"o1","status":"Processed","message":"Order o1 processed. Stock updated!"}`,
			},
		},
		{
			name: "ship before process",
			path: "/api/orders/o1/ship",
			expect: func() {
				s.EXPECT().ShipOrder(gomock.Any(), "o1").Return(entity.OrderState{}, err_usecase.InvalidState("order o1 must be processed first"))
			},
			want: want{
				statusCode: http.StatusConflict,
				outputBody: `{"error":"order o1 must be processed first"}`,
			},
		},
		{
			name: "cancel",
			path: "/api/orders/o1/cancel",
			expect: func() {
				s.EXPECT().CancelOrder(gomock.Any(), "o1").Return(entity.OrderState{ID: "o1", Status: entity.StatusCancelledOrder}, nil)
			},
			want: want{
				statusCode: http.StatusOK,
				outputBody: `{"id":"o1","status":"Cancelled","message":"Order o1 cancelled"}`,
			},
		},
		{
			name: "unknown order",
			path: "/api/orders/o9/cancel",
			expect: func() {
				s.EXPECT().CancelOrder(gomock.Any(), "o9").Return(entity.OrderState{}, err_usecase.NotFound("order o9 not found"))
			},
			want: want{
				statusCode: http.StatusNotFound,
				outputBody: `{"error":"order o9 not found"}`,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, test.path, nil)
			writer := httptest.NewRecorder()

			test.expect()
			newRouter(New(s)).ServeHTTP(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			bodyResult, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.JSONEq(t, test.want.outputBody, string(bodyResult))
		})
	}
}

func TestGetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	s.EXPECT().GetOrder(gomock.Any(), "o1").Return(entity.Order{
		ID:         "o1",
		CustomerID: "c1",
		Status:     entity.StatusShippedOrder,
		Items: entity.OrderItems{
			{OrderID: "o1", BookID: "b1", Quantity: 2, Price: decimal.RequireFromString("12.50")},
		},
	}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil)
	writer := httptest.NewRecorder()
	newRouter(New(s)).ServeHTTP(writer, request)

	res := writer.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	bodyResult, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(bodyResult), `"status":"Shipped"`)
	assert.Contains(t, string(bodyResult), `"items":[{"book":"b1","quantity":2,"price":"12.5"}]`)
}
