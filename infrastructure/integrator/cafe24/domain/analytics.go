package cafe24domain

// VisitorsResponse is the /visitors/dailyactive payload
type VisitorsResponse struct {
	DailyActive []VisitorActivity `json:"dailyactive"`
}

// VisitorActivity is one day of visitor counts. Date arrives as an ISO
// timestamp with offset; UserCount has shown up both as number and string,
// so it stays untyped until coercion.
type VisitorActivity struct {
	Date      string `json:"date"`
	UserCount any    `json:"user_count"`
}

// OrdersResponse is the /sales/orderdetails payload
type OrdersResponse struct {
	OrderDetails []OrderDetail `json:"orderdetails"`
}

// OrderDetail is one order row. OrderAmount stays untyped for the same
// reason as VisitorActivity.UserCount.
type OrderDetail struct {
	OrderID     string `json:"order_id"`
	OrderDate   string `json:"order_date"`
	OrderAmount any    `json:"order_amount"`
}
