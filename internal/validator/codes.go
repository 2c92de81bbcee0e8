package validator

const (
	ErrInstanceNotFound = "E020"
	ErrNoSchema         = "E021"
	ErrSchemaMissing    = "E022"
	ErrSchemaInvalid    = "E023"
	ErrInstanceInvalid  = "E024"
)
