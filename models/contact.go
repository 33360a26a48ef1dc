package models

// ContactSubmission is a fire-and-forget message written to the
// contact_submissions collection. Nothing ever reads it back here.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
