package models

// EmailMessage is composed content, free of transport concerns.
type EmailMessage struct {
	Subject string
	Text    string
	HTML    string
}

// OutboundEmail is a composed message bound to a recipient, ready for a
// dispatch channel.
type OutboundEmail struct {
	FromName string
	To       string
	Subject  string
	Text     string
	HTML     string
}

// DispatchResult is the aggregate outcome reported to the caller.
type DispatchResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
