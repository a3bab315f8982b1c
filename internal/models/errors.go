package models

import "fmt"

// InvalidOrderDataError flags an order whose timestamp cannot be parsed.
// Bad chronology is never coerced to "now"; the whole analysis call fails
// and the error propagates unchanged to the caller.
type InvalidOrderDataError struct {
	OrderID string
	Field   string
	Value   string
}

func (e *InvalidOrderDataError) Error() string {
	return fmt.Sprintf("invalid order data: order %s has unparseable %s %q", e.OrderID, e.Field, e.Value)
}
