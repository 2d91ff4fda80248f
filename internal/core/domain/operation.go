package domain

// Operation names an action a user may request. Every scoped read or
// mutation in the system is gated on one of these through the
// authorization gate before it runs.
type Operation string

const (
	OpViewOwnProfile    Operation = "view-own-profile"
	OpEditOwnProfile    Operation = "edit-own-profile"
	OpViewMenu          Operation = "view-menu"
	OpPlaceOrder        Operation = "place-order"
	OpViewOwnOrders     Operation = "view-own-orders"
	OpViewAllOrders     Operation = "view-all-orders"
	OpViewOrder         Operation = "view-order"
	OpUpdateOrderStatus Operation = "update-order-status"
	OpManageMenu        Operation = "manage-menu"
	OpManageUsers       Operation = "manage-users"
)

// Operations enumerates every gated operation.
var Operations = []Operation{
	OpViewOwnProfile,
	OpEditOwnProfile,
	OpViewMenu,
	OpPlaceOrder,
	OpViewOwnOrders,
	OpViewAllOrders,
	OpViewOrder,
	OpUpdateOrderStatus,
	OpManageMenu,
	OpManageUsers,
}
