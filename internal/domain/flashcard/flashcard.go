package flashcard

import "time"

// Card is one term/definition study pair.
type Card struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Set is an ordered collection of cards. FolderID is empty for root-level
// sets.
type Set struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	Cards     []Card    `json:"cards"`
	FolderID  string    `json:"folder_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
