package valueobject

// UserID, CardID, and ReviewLogID are distinct ULID-backed identifier types
// rather than bare strings, so the compiler catches a card id passed where a
// user id is expected. All three are rendered as 26-character Crockford
// base32 ULIDs (see internal/idgen).
type (
	UserID      string
	CardID      string
	ReviewLogID string
)

func (id UserID) String() string      { return string(id) }
func (id CardID) String() string      { return string(id) }
func (id ReviewLogID) String() string { return string(id) }
