package entity

// HealthTip is static wellness content shown on the dashboard.
type HealthTip struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon"`
}
