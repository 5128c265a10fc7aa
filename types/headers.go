package types

// Header is a single name/value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered header collection. Insertion order is preserved;
// setting an existing name overwrites the value in place.
type Headers []Header // ! Kept here rather than in utils to prevent import cycles between utils and transport packages.

// Set adds or overwrites a header, keeping the position of the first insert.
func (h *Headers) Set(name, value string) {
	for i := range *h {
		if (*h)[i].Name == name {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Header{Name: name, Value: value})
}

// Get returns the value for name, or "" when absent.
func (h Headers) Get(name string) string {
	for _, hdr := range h {
		if hdr.Name == name {
			return hdr.Value
		}
	}
	return ""
}

// Merge applies every header from other on top of h, in other's order.
func (h *Headers) Merge(other Headers) {
	for _, hdr := range other {
		h.Set(hdr.Name, hdr.Value)
	}
}
