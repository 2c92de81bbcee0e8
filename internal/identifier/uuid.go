package identifier

import (
	"github.com/google/uuid"

	"github.com/gts-project/gts/internal/gtserr"
)

// Namespace is the fixed UUIDv5 namespace every identifier UUID is
// derived under: UUIDv5 of the RFC 4122 URL namespace and the literal
// string "gts". Changing this constant is a breaking change: every
// previously derived UUID stops matching.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("gts"))

// ToUUID derives a deterministic UUIDv5 from id's canonical rendering.
// id must not be a pattern.
func ToUUID(id Identifier) (uuid.UUID, error) {
	if id.IsPattern() {
		return uuid.UUID{}, gtserr.New(gtserr.KindParseError, ErrInvalidSegment,
			"cannot derive a UUID from a pattern identifier")
	}
	return uuid.NewSHA1(Namespace, []byte(id.Render())), nil
}
