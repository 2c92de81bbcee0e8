package store

// Config is the store's only configuration surface: two ordered lists of
// JSON property names consulted at a document's root, and nothing else —
// no ambient configuration, no globals. Callers construct a Config
// (typically via DefaultConfig, overridden as needed) and pass it into
// New explicitly.
type Config struct {
	EntityIDFields []string
	SchemaIDFields []string
}

// DefaultConfig returns the default field lists, checked in the given
// order.
func DefaultConfig() Config {
	return Config{
		EntityIDFields: []string{
			"$id", "gtsId", "gtsIid", "gtsOid", "gtsI",
			"gts_id", "gts_oid", "gts_iid", "id",
		},
		SchemaIDFields: []string{
			"$schema", "gtsTid", "gtsType", "gtsT",
			"gts_t", "gts_tid", "gts_type", "type", "schema",
		},
	}
}
