package converter

import (
	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	"github.com/avGenie/go-bookstore-inventory/internal/app/model"
)

func ConvertCustomerToResponse(customer entity.Customer) model.CustomerResponse {
	return model.CustomerResponse{
		ID:      customer.ID.String(),
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
	}
}
