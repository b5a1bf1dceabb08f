package models

type FulfillmentMethod string

const (
	MethodPickup   FulfillmentMethod = "pickup"
	MethodDelivery FulfillmentMethod = "delivery"
)

// OrderDetails is the checkout form. It lives only as long as the session.
type OrderDetails struct {
	CustomerName string
	Phone        string
	Address      string
	Method       FulfillmentMethod
	Notes        string
}
