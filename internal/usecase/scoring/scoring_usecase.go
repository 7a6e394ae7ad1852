package scoring

import "github.com/emberapp/ember-backend/internal/domain"

// Scoring weights. They saturate at exactly 100:
// photos 30 + basics 30 + interests 20 + details 20.
const (
	pointsPerPhoto    = 5
	maxScoredPhotos   = 6
	pointsPerBasic    = 5
	pointsPerInterest = 4
	maxScoredTags     = 5
	pointsPerDetail   = 2
	maxScore          = 100
)

// Breakdown reports how each dimension contributed to the total.
type Breakdown struct {
	Score          int `json:"score"`
	PhotoPoints    int `json:"photo_points"`
	BasicPoints    int `json:"basic_points"`
	InterestPoints int `json:"interest_points"`
	DetailPoints   int `json:"detail_points"`
}

// Score computes the 0-100 profile completion score. It is deterministic and
// total: missing optional fields simply contribute nothing.
func Score(p *domain.Profile) int {
	return Completion(p).Score
}

// Completion computes the score with its per-dimension breakdown.
func Completion(p *domain.Profile) Breakdown {
	var b Breakdown

	photos := len(p.Photos)
	if photos > maxScoredPhotos {
		photos = maxScoredPhotos
	}
	b.PhotoPoints = photos * pointsPerPhoto

	for _, f := range domain.BasicFields {
		if p.HasBasic(f) {
			b.BasicPoints += pointsPerBasic
		}
	}

	tags := len(p.Interests)
	if tags > maxScoredTags {
		tags = maxScoredTags
	}
	b.InterestPoints = tags * pointsPerInterest

	for _, f := range domain.DetailFields {
		if p.Details.Has(f) {
			b.DetailPoints += pointsPerDetail
		}
	}

	b.Score = b.PhotoPoints + b.BasicPoints + b.InterestPoints + b.DetailPoints
	if b.Score > maxScore {
		b.Score = maxScore
	}
	return b
}
