package types

import "fmt"

// AddressRecord holds one address entry as read from a source file.
// Floor is kept as text; it only becomes a number once validated.
type AddressRecord struct {
	City   string
	Floor  string
	House  string
	Street string
}

// String renders the full field set in a stable order.
func (r AddressRecord) String() string {
	return fmt.Sprintf("{city: %s, floor: %s, house: %s, street: %s}", r.City, r.Floor, r.House, r.Street)
}

// FromFields builds a record from a name -> value lookup. Missing names
// produce empty fields.
func FromFields(get func(name string) string) AddressRecord {
	return AddressRecord{
		City:   get("city"),
		Floor:  get("floor"),
		House:  get("house"),
		Street: get("street"),
	}
}
