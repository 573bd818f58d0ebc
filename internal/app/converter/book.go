package converter

import (
	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	"github.com/avGenie/go-bookstore-inventory/internal/app/model"
)

func ConvertBookStockToResponse(stock entity.BookStock) model.StockResponse {
	return model.StockResponse{
		ID:    stock.ID.String(),
		Stock: stock.Stock,
	}
}

func ConvertBookToResponse(book entity.Book) model.BookResponse {
	return model.BookResponse{
		ID:    book.ID.String(),
		Title: book.Title,
		Stock: book.Stock,
		Price: book.Price,
	}
}
