package domain

// Application is one entry of the static service catalog: a request form
// reachable from the portal landing page.
type Application struct {
	ID          string
	Title       string
	Description string
	Icon        string
	FormURL     string
	Category    string
}
