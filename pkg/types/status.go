package types

// OrderStatus is the lifecycle state of an order. The only legal
// transition is OrderStatusOrder -> OrderStatusCancel.
type OrderStatus string

const (
	// OrderStatusOrder is the initial state of a placed order.
	OrderStatusOrder OrderStatus = "ORDER"
	// OrderStatusCancel is the terminal state of a cancelled order.
	OrderStatusCancel OrderStatus = "CANCEL"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusOrder || s == OrderStatusCancel
}

// DeliveryStatus is the shipping state of an order's delivery.
type DeliveryStatus string

const (
	// DeliveryStatusReady means the delivery has not shipped yet.
	DeliveryStatusReady DeliveryStatus = "READY"
	// DeliveryStatusComp means the delivery has completed. Orders with a
	// completed delivery can no longer be cancelled.
	DeliveryStatusComp DeliveryStatus = "COMP"
)

// Valid reports whether s is a known delivery status.
func (s DeliveryStatus) Valid() bool {
	return s == DeliveryStatusReady || s == DeliveryStatusComp
}
