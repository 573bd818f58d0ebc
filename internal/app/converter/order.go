package converter

import (
	"fmt"

	"github.com/golang-module/carbon/v2"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	"github.com/avGenie/go-bookstore-inventory/internal/app/model"
)

func ConvertSubmissionToResponse(submission entity.OrderSubmission) model.SubmitOrderResponse {
	return model.SubmitOrderResponse{
		OrderID:    submission.OrderID.String(),
		CustomerID: submission.CustomerID.String(),
		Status:     submission.Status.String(),
		Book:       submission.BookID.String(),
		Quantity:   submission.Quantity,
		Price:      submission.Price,
		Message:    fmt.Sprintf("Order %s created for book %s!", submission.OrderID, submission.BookID),
	}
}

func ConvertOrderStateToResponse(state entity.OrderState) model.OrderStatusResponse {
	return model.OrderStatusResponse{
		ID:      state.ID.String(),
		Status:  state.Status.String(),
		Message: orderStateMessage(state),
	}
}

func ConvertOrderToResponse(order entity.Order) model.OrderResponse {
	items := make([]model.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderItemResponse{
			Book:     item.BookID.String(),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return model.OrderResponse{
		ID:         order.ID.String(),
		CustomerID: order.CustomerID.String(),
		Status:     order.Status.String(),
		CreatedAt:  carbon.CreateFromStdTime(order.CreatedAt).ToRfc3339String(),
		Items:      items,
	}
}

func orderStateMessage(state entity.OrderState) string {
	switch state.Status {
	case entity.StatusProcessedOrder:
		return fmt.Sprintf("Order %s processed. Stock updated!", state.ID)
	case entity.StatusShippedOrder:
		return fmt.Sprintf("Order %s shipped!", state.ID)
	case entity.StatusCancelledOrder:
		return fmt.Sprintf("Order %s cancelled", state.ID)
	default:
		return fmt.Sprintf("Order %s is %s", state.ID, state.Status)
	}
}
