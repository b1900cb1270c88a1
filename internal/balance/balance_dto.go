package balance

type BalanceResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Sick   int    `json:"sick"`
	Casual int    `json:"casual"`
	Earned int    `json:"earned"`
}
