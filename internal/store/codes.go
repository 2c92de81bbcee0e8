package store

const (
	ErrMalformedEntityID = "E010"
	ErrDuplicateEntity   = "E011"
	ErrIngestAborted     = "E012"
)
