package model

// Message is one reported outcome of a command, indexed within a run.
type Message struct {
	ID    int    `json:"id"`
	Level string `json:"level"`
	Code  string `json:"code"`
	Text  string `json:"message"`
}

const (
	LevelInfo     = "INFO"
	LevelCritical = "CRITICAL"
)

const CodeOK = "OK"
