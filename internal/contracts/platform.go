package contracts

type SubscriptionActivateRequest struct {
	SubscriptionID int    `json:"subscription_id" binding:"required"`
	Status         string `json:"status" binding:"required,oneof=accepted denied"`
}
