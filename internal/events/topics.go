package events

// Topics emitted by the storefront front end.
const (
	TopicItemAdded       = "cart.item_added"
	TopicItemRemoved     = "cart.item_removed"
	TopicDiscountApplied = "cart.discount_applied"
	TopicCheckout        = "checkout.completed"
)
