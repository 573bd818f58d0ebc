package httputils

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avGenie/go-bookstore-inventory/internal/app/model"
	err_usecase "github.com/avGenie/go-bookstore-inventory/internal/app/usecase/errors"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second

	ErrInvalidBody = "request body is invalid"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func DecodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("error while request body parsing: %w", err)
	}

	return nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

// WriteError writes the error body with the status matching the error kind.
func WriteError(w http.ResponseWriter, err error) {
	message := err_usecase.Internal().Error()
	var usecaseErr *err_usecase.Error
	if errors.As(err, &usecaseErr) && usecaseErr.Kind != err_usecase.KindInternal {
		message = usecaseErr.Message
	}

	WriteJSON(w, StatusCode(err), model.ErrorResponse{Error: message})
}

func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: message})
}

func StatusCode(err error) int {
	switch err_usecase.KindOf(err) {
	case err_usecase.KindInvalidInput:
		return http.StatusBadRequest
	case err_usecase.KindNotFound:
		return http.StatusNotFound
	case err_usecase.KindConflict, err_usecase.KindInsufficientStock, err_usecase.KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
