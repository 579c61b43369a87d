package model

// Amenity is a feature a place can offer (wifi, pool, ...).
type Amenity struct {
	EntityMeta
	Name string `json:"name"`
}

// NewAmenity validates the name and returns an Amenity with fresh identity
// and timestamps.
func NewAmenity(name string) (*Amenity, error) {
	n, err := trimmedName("name", name)
	if err != nil {
		return nil, err
	}
	return &Amenity{EntityMeta: NewMeta(), Name: n}, nil
}

// AmenityPatch enumerates the updatable amenity fields.
type AmenityPatch struct {
	Name *string `json:"name"`
}

// Apply validates and merges the patch into the amenity.
func (a *Amenity) Apply(p AmenityPatch) error {
	if p.Name != nil {
		v, err := trimmedName("name", *p.Name)
		if err != nil {
			return err
		}
		a.Name = v
		a.Touch()
	}
	return nil
}
