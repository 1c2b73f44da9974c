package schema

// LibraryEntryTable represents the 'library.entry' table
type LibraryEntryTable struct {
	Table     string
	ID        string
	UserID    string
	BookID    string
	Status    string
	CreatedAt string
}

// LibraryEntry is the schema definition for library.entry
var LibraryEntry = LibraryEntryTable{
	Table:     "library.entry",
	ID:        "id",
	UserID:    "user_id",
	BookID:    "book_id",
	Status:    "status",
	CreatedAt: "created_at",
}

func (t LibraryEntryTable) Columns() []string {
	return []string{t.ID, t.UserID, t.BookID, t.Status, t.CreatedAt}
}
