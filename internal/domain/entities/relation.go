package entities

// Relation is an undirected friendship between two person IDs.
// The order of the endpoints carries no meaning.
type Relation struct {
	PersonA string `json:"person_a"`
	PersonB string `json:"person_b"`
}

// RelationKey is the normalised form of a relation: Lo <= Hi.
type RelationKey struct {
	Lo string
	Hi string
}

// NewRelation creates a relation between a and b.
func NewRelation(a, b string) Relation {
	return Relation{PersonA: a, PersonB: b}
}

// Key returns the endpoint pair in ascending order, so that Relation(a,b)
// and Relation(b,a) share a key.
func (r Relation) Key() RelationKey {
	if r.PersonB < r.PersonA {
		return RelationKey{Lo: r.PersonB, Hi: r.PersonA}
	}
	return RelationKey{Lo: r.PersonA, Hi: r.PersonB}
}

// Equal is symmetric in the endpoints.
func (r Relation) Equal(other Relation) bool {
	return r.Key() == other.Key()
}

// IsSelfLoop reports whether both endpoints are the same person.
func (r Relation) IsSelfLoop() bool {
	return r.PersonA == r.PersonB
}

// Other returns the endpoint opposite to id. The second return value is
// false when id is not an endpoint.
func (r Relation) Other(id string) (string, bool) {
	switch id {
	case r.PersonA:
		return r.PersonB, true
	case r.PersonB:
		return r.PersonA, true
	default:
		return "", false
	}
}
