package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 在庫系のエラーは必ず商品名を入れて返す。
func errOutOfStock(productName string) error {
	return NewHTTPError(http.StatusBadRequest, "out of stock: "+productName)
}

func errInsufficientStock(productName string) error {
	return NewHTTPError(http.StatusBadRequest, "insufficient stock: "+productName)
}
