package models

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
