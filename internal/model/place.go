package model

// Place is a rental listing. OwnerID is immutable after creation: PlacePatch
// has no owner field and no endpoint may reassign it. Amenities is a set of
// amenity ids (attaching the same id twice is a no-op); Reviews holds review
// ids in posting order, append-only except for review deletion.
type Place struct {
	EntityMeta
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
	Reviews     []string `json:"reviews"`
}

// NewPlace validates the given fields and returns a Place with fresh
// identity and timestamps. The owner reference is checked by the facade.
func NewPlace(title, description string, priceVal, lat, lon float64, ownerID string) (*Place, error) {
	t, err := trimmedTitle("title", title)
	if err != nil {
		return nil, err
	}
	d, err := trimmedText("description", description)
	if err != nil {
		return nil, err
	}
	pr, err := price(priceVal)
	if err != nil {
		return nil, err
	}
	la, err := latitude(lat)
	if err != nil {
		return nil, err
	}
	lo, err := longitude(lon)
	if err != nil {
		return nil, err
	}
	return &Place{
		EntityMeta:  NewMeta(),
		Title:       t,
		Description: d,
		Price:       pr,
		Latitude:    la,
		Longitude:   lo,
		OwnerID:     ownerID,
		Amenities:   []string{},
		Reviews:     []string{},
	}, nil
}

// PlacePatch enumerates the updatable place fields. OwnerID and Reviews are
// deliberately absent: the owner is immutable and the review list is only
// mutated through review creation/deletion.
type PlacePatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Amenities   *[]string `json:"amenities"`
}

// Apply validates and merges the patch into the place, refreshing UpdatedAt
// when something changed. Amenity ids are deduplicated; their existence is
// checked by the facade.
func (p *Place) Apply(patch PlacePatch) error {
	if patch.Title != nil {
		v, err := trimmedTitle("title", *patch.Title)
		if err != nil {
			return err
		}
		p.Title = v
	}
	if patch.Description != nil {
		v, err := trimmedText("description", *patch.Description)
		if err != nil {
			return err
		}
		p.Description = v
	}
	if patch.Price != nil {
		v, err := price(*patch.Price)
		if err != nil {
			return err
		}
		p.Price = v
	}
	if patch.Latitude != nil {
		v, err := latitude(*patch.Latitude)
		if err != nil {
			return err
		}
		p.Latitude = v
	}
	if patch.Longitude != nil {
		v, err := longitude(*patch.Longitude)
		if err != nil {
			return err
		}
		p.Longitude = v
	}
	if patch.Amenities != nil {
		p.Amenities = dedupe(*patch.Amenities)
	}
	if patch.Title != nil || patch.Description != nil || patch.Price != nil ||
		patch.Latitude != nil || patch.Longitude != nil || patch.Amenities != nil {
		p.Touch()
	}
	return nil
}

// AddAmenity attaches an amenity id. Set semantics: adding an id that is
// already attached does nothing.
func (p *Place) AddAmenity(amenityID string) {
	for _, id := range p.Amenities {
		if id == amenityID {
			return
		}
	}
	p.Amenities = append(p.Amenities, amenityID)
	p.Touch()
}

// AddReview appends a review id in posting order.
func (p *Place) AddReview(reviewID string) {
	p.Reviews = append(p.Reviews, reviewID)
	p.Touch()
}

// RemoveReview drops a review id from the list. This is the place-side half
// of the review deletion cascade.
func (p *Place) RemoveReview(reviewID string) {
	for i, id := range p.Reviews {
		if id == reviewID {
			p.Reviews = append(p.Reviews[:i], p.Reviews[i+1:]...)
			p.Touch()
			return
		}
	}
}

// dedupe preserves first-seen order while dropping repeated ids.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
