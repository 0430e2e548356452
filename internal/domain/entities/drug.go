package entities

// DrugName is a raw user-supplied drug name. Nothing guarantees its shape.
type DrugName string

// DrugIdentifier is an RxCUI exactly as the registry returns it (digits).
type DrugIdentifier string

// Interaction is one pairwise finding reported by the registry, in English.
type Interaction struct {
	Description string
}
