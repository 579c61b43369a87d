package model

// Review is a rating plus text a user posts about a place. PlaceID and
// UserID are immutable after creation; ReviewPatch only carries text and
// rating. The (UserID, PlaceID) pair is unique system-wide and a user can
// never review a place they own — both rules are enforced by the facade
// before persistence.
type Review struct {
	EntityMeta
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

// NewReview validates text and rating and returns a Review with fresh
// identity and timestamps. The place and user references are checked by the
// facade.
func NewReview(text string, ratingVal int, placeID, userID string) (*Review, error) {
	t, err := trimmedText("text", text)
	if err != nil {
		return nil, err
	}
	r, err := rating(ratingVal)
	if err != nil {
		return nil, err
	}
	return &Review{
		EntityMeta: NewMeta(),
		Text:       t,
		Rating:     r,
		PlaceID:    placeID,
		UserID:     userID,
	}, nil
}

// ReviewPatch enumerates the updatable review fields. Only the author may
// submit one, and only text and rating can change.
type ReviewPatch struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// Apply validates and merges the patch into the review.
func (r *Review) Apply(p ReviewPatch) error {
	if p.Text != nil {
		v, err := trimmedText("text", *p.Text)
		if err != nil {
			return err
		}
		r.Text = v
	}
	if p.Rating != nil {
		v, err := rating(*p.Rating)
		if err != nil {
			return err
		}
		r.Rating = v
	}
	if p.Text != nil || p.Rating != nil {
		r.Touch()
	}
	return nil
}
