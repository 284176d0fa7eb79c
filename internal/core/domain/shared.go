package domain

import "strconv"

// ID is the storage-assigned product identifier.
type ID int64

// ParseID accepts the decimal form used in URLs. Zero and negative values are
// never assigned by storage, so they are rejected.
func ParseID(raw string) (ID, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return ID(n), true
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type Event interface {
	GetName() string
	GetEntityName() string
}
