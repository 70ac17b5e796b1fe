package database

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	handle *Handle
}

// NewRepository creates a new Repository on top of the given handle.
func NewRepository(h *Handle) *Repository {
	return &Repository{
		TaskRepo: NewTaskRepo(h),
		handle:   h,
	}
}

// Close releases the storage handle
func (r *Repository) Close() error {
	return r.handle.Close()
}
