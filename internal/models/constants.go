package models

const (
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusFailed    = "failed"

	PaymentMethodCard   = "Card"
	PaymentMethodBkash  = "bKash"
	PaymentMethodCash   = "Cash on Delivery"
	PaymentMethodWallet = "Wallet"

	SpenderBig    = "Big Spender"
	SpenderMedium = "Medium Spender"
	SpenderLight  = "Light Spender"

	LoyaltySuperLoyal = "Super Loyal"
	LoyaltyLoyal      = "Loyal"
	LoyaltyExplorer   = "Explorer"

	FrequencyHeavy    = "Heavy"
	FrequencyModerate = "Moderate"
	FrequencyLight    = "Light"

	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)
