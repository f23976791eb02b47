package models

// OrderEmailData is the order submitted by the storefront.
type OrderEmailData struct {
	CustomerName       string  `json:"customerName"`
	CustomerEmail      string  `json:"customerEmail"`
	CustomerCompany    string  `json:"customerCompany"`
	ProductName        string  `json:"productName"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unitPrice"`
	TotalPrice         float64 `json:"totalPrice"`
	ShippingAddress    string  `json:"shippingAddress"`
	ShippingCity       string  `json:"shippingCity"`
	ShippingPostalCode string  `json:"shippingPostalCode"`
	Notes              string  `json:"notes,omitempty"` // Empty means no notes section
}

// EmailPayload is the notification assembled for the operator's inbox.
type EmailPayload struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

const NotificationSentMessage = "Order notification sent successfully"

type NotificationResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    EmailPayload `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
