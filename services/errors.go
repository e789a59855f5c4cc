package services

import (
	"errors"
	"strconv"
)

// ValidationError is caught before any network call; no partial mutation
// happens once one is returned.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	ErrEmptyCart         = validationErr("cart is empty")
	ErrNoTarget          = validationErr("table or delivery marker is required")
	ErrReasonRequired    = validationErr("cancellation reason is required")
	ErrEmptySelection    = validationErr("payment selection is empty")
	ErrNoPreparingItems  = validationErr("order has no preparing items")
	ErrItemNotCancelable = validationErr("item status does not allow cancellation")
	ErrNoContainer       = validationErr("recipe has no takeaway container")
	ErrQtyBelowOne       = validationErr("quantity must be at least 1")
	ErrItemNotEligible   = validationErr("item is not eligible for payment")

	ErrOrderNotFound  = errors.New("order not found")
	ErrItemNotFound   = errors.New("order item not found")
	ErrLineNotFound   = errors.New("cart line not found")
	ErrRecipeNotFound = errors.New("recipe not found")
)

// AppendError reports a mid-sequence failure while appending lines to an
// existing order. Lines before FailedIndex are committed server-side and stay
// committed; there is no compensation, the next reload resynchronizes.
type AppendError struct {
	OrderID     uint
	FailedIndex int
	Appended    int
	Err         error
}

func (e *AppendError) Error() string {
	return "append failed at line " + strconv.Itoa(e.FailedIndex) + ": " + e.Err.Error()
}

func (e *AppendError) Unwrap() error { return e.Err }
