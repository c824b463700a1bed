package normalizer

import "strings"

// Address holds the components derived from a single-line postal address.
// A nil field means the input lacked the structure to determine it, not
// that the component was present but empty.
type Address struct {
	Street  *string
	City    *string
	State   *string
	ZipCode *string
}

// ParseAddress splits a comma-delimited "Street, City, STATE ZIP" string
// into components. Fewer than three comma-separated parts is not an error:
// it returns all fields absent. The third part is whitespace-split into
// state and zip; parts beyond the third are ignored.
//
// This is a heuristic over US-shaped addresses. It does not validate state
// abbreviations or zip formats.
func ParseAddress(address string) Address {
	parts := strings.Split(address, ",")
	if len(parts) < 3 {
		return Address{}
	}

	street := strings.TrimSpace(parts[0])
	city := strings.TrimSpace(parts[1])

	addr := Address{
		Street: &street,
		City:   &city,
	}

	stateZip := strings.Fields(parts[2])
	if len(stateZip) >= 1 {
		addr.State = &stateZip[0]
	}
	if len(stateZip) >= 2 {
		addr.ZipCode = &stateZip[1]
	}

	return addr
}
