package database

// DataStore defines the unified interface for all data operations needed by the
// services. It is satisfied by *Repository and by test fakes.
type DataStore interface {
	TaskRepository
	Close() error
}
