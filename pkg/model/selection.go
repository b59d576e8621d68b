package model

// Selection holds the allowed values for each filterable attribute. It is
// never modified after construction. An attribute without an entry allows
// nothing.
type Selection struct {
	allowed map[Attribute]map[string]struct{}
}

func NewSelection(values map[Attribute][]string) Selection {
	allowed := make(map[Attribute]map[string]struct{}, len(values))
	for attr, vals := range values {
		set := make(map[string]struct{}, len(vals))
		for _, v := range vals {
			set[v] = struct{}{}
		}
		allowed[attr] = set
	}
	return Selection{allowed: allowed}
}

// SelectAll builds the default selection: every known value of every
// attribute.
func SelectAll(options FilterOptions) Selection {
	return NewSelection(options)
}

func (s Selection) Allows(attr Attribute, value string) bool {
	_, ok := s.allowed[attr][value]
	return ok
}

// Matches reports whether every filterable attribute of r is allowed.
func (s Selection) Matches(r Reservation) bool {
	for _, attr := range FilterAttributes {
		if !s.Allows(attr, r.Value(attr)) {
			return false
		}
	}
	return true
}

// Len returns how many values are allowed for attr.
func (s Selection) Len(attr Attribute) int {
	return len(s.allowed[attr])
}
