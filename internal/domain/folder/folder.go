package folder

// Folder is a flat grouping bucket for exams, summaries and flashcard sets.
// Folders do not nest. IDs are minted by the backend.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
