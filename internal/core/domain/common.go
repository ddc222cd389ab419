package domain

// ListOptions bounds list queries. A zero Limit means no limit.
type ListOptions struct {
	Limit int
}

// Identity is the verified caller attached to a request by the identity gate.
type Identity struct {
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Name    string `json:"name,omitempty"`
}
