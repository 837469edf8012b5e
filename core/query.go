package core

// Ordering names a sortable field on a collection snapshot.
// Field is the caller-facing name; each domain package maps it to its
// canonical attribute before comparison.
type Ordering struct {
	Field     string
	Ascending bool
}

func (ord Ordering) String() string {
	direction := "desc"
	if ord.Ascending {
		direction = "asc"
	}
	return ord.Field + " " + direction
}
