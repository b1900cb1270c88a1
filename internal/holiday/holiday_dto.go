package holiday

type HolidayResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Year      int    `json:"year"`
	IsFloater bool   `json:"is_floater"`
}

type SyncResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}
