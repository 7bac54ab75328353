package request

// ApprovalRequest decides a pending quote.
type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type TermsRequest struct {
	Terms string `json:"terms"`
}

type ServiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}

type TimelineEventRequest struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

type ChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
