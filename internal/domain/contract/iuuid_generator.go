package contract

// IUUIDGenerator abstracts document ID generation.
type IUUIDGenerator interface {
	NewUUID() string
}
