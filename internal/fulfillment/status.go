package fulfillment

// ItemStatus is the fulfillment state of a single order line item. It is
// owned and updated by the brand fulfilling that item.
type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemProcessing ItemStatus = "processing"
	ItemShipped    ItemStatus = "shipped_by_brand"
	ItemDelivered  ItemStatus = "delivered_to_customer"
	ItemCancelled  ItemStatus = "cancelled"
	ItemReturned   ItemStatus = "returned"
)

// Valid reports whether s is one of the known item statuses. Transitions are
// not restricted to a state machine; only the value set is enforced.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemProcessing, ItemShipped, ItemDelivered, ItemCancelled, ItemReturned:
		return true
	}
	return false
}

// OverallStatus is the order-wide summary shown to the customer. It is a
// cached projection of the item statuses and must stay re-derivable from
// them. OverallPendingPayment is the only exception: it is set at placement
// and has no item-level counterpart.
type OverallStatus string

const (
	OverallPendingPayment OverallStatus = "pending_payment"
	OverallProcessing     OverallStatus = "processing"
	OverallShipped        OverallStatus = "shipped"
	OverallDelivered      OverallStatus = "delivered"
	OverallCancelled      OverallStatus = "cancelled"
	OverallRefunded       OverallStatus = "refunded"
)
