package model

// Request is a batch of command lines run in order against the book.
type Request struct {
	Commands        []string `json:"commands"`
	ContinueOnError bool     `json:"continue_on_error"`
}
