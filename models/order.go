package models

// InquiryRequest is the body of a purchase-inquiry call: which product
// the user wants and in which of its listed sizes.
type InquiryRequest struct {
	ProductID ProductID `json:"product_id" binding:"required"`
	Size      string    `json:"size" binding:"required" example:"M"`
}

// OrderInquiry is the composed, human-readable order summary together
// with the messaging deep link it should be sent through. No order
// state is kept server-side.
type OrderInquiry struct {
	ProductID ProductID `json:"product_id"`
	Summary   string    `json:"summary"`
	Link      string    `json:"link"`
}
