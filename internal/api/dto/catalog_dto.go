package dto

// ApplicationResponse is one catalog entry.
type ApplicationResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	FormURL     string `json:"form_url"`
	Category    string `json:"category"`
}
