package types

// Address is the immutable city/street/zipcode value triple shared by
// members (home address) and deliveries (shipping address).
type Address struct {
	City    string
	Street  string
	Zipcode string
}

// IsZero reports whether no field of the address is set.
func (a Address) IsZero() bool {
	return a.City == "" && a.Street == "" && a.Zipcode == ""
}
