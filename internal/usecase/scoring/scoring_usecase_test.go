package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberapp/ember-backend/internal/domain"
)

func fullDetails() domain.Details {
	return domain.Details{
		Height:     "5'7\"",
		Exercise:   "Active",
		Drinking:   "Socially",
		Smoking:    "Never",
		LookingFor: "Relationship",
		Kids:       "Want someday",
		StarSign:   "Taurus",
		Politics:   "Moderate",
		Religion:   "Agnostic",
		Languages:  []string{"English"},
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.Profile
		want    int
	}{
		{
			name:    "empty profile",
			profile: domain.Profile{},
			want:    0,
		},
		{
			name: "one photo three basics two interests",
			profile: domain.Profile{
				Photos:    []string{"p1"},
				About:     "hi",
				Age:       25,
				Gender:    domain.GenderFemale,
				Interests: []string{"Hiking", "Coffee"},
			},
			// 1*5 + 3*5 + 2*4 = 28
			want: 28,
		},
		{
			name: "fully complete profile",
			profile: domain.Profile{
				Photos:          []string{"1", "2", "3", "4", "5", "6"},
				About:           "hi",
				Age:             25,
				Gender:          domain.GenderMale,
				CurrentLocation: "SF",
				Work:            "Chef",
				Education:       "CIA",
				Interests:       []string{"a", "b", "c", "d", "e"},
				Details:         fullDetails(),
			},
			want: 100,
		},
		{
			name: "extra photos and interests beyond the caps do not add points",
			profile: domain.Profile{
				Photos:    []string{"1", "2", "3", "4", "5", "6", "7", "8"},
				Interests: []string{"a", "b", "c", "d", "e", "f", "g"},
			},
			// capped at 6*5 + 5*4
			want: 50,
		},
		{
			name: "details only",
			profile: domain.Profile{
				Details: domain.Details{StarSign: "Leo", Drinking: "Socially"},
			},
			want: 4,
		},
		{
			name: "empty languages slice does not count",
			profile: domain.Profile{
				Details: domain.Details{Languages: []string{}},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(&tt.profile))
		})
	}
}

func TestScoreBounded(t *testing.T) {
	// Saturate every dimension well past its cap.
	p := domain.Profile{
		Photos:          make([]string, 20),
		About:           "x",
		Age:             99,
		Gender:          domain.GenderOther,
		CurrentLocation: "x",
		Work:            "x",
		Education:       "x",
		Interests:       make([]string, 20),
		Details:         fullDetails(),
	}
	got := Score(&p)
	assert.GreaterOrEqual(t, got, 0)
	assert.LessOrEqual(t, got, 100)
	assert.Equal(t, 100, got)
}

func TestScoreMonotonicInPhotos(t *testing.T) {
	p := domain.Profile{About: "x", Interests: []string{"a"}}
	prev := Score(&p)
	for i := 0; i < 6; i++ {
		p.Photos = append(p.Photos, fmt.Sprintf("photo-%d", i))
		got := Score(&p)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestScoreMonotonicInInterests(t *testing.T) {
	p := domain.Profile{}
	prev := Score(&p)
	for i := 0; i < 5; i++ {
		p.Interests = append(p.Interests, fmt.Sprintf("tag-%d", i))
		got := Score(&p)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestCompletionBreakdown(t *testing.T) {
	p := domain.Profile{
		Photos:    []string{"p1", "p2"},
		About:     "hi",
		Work:      "Chef",
		Interests: []string{"a"},
		Details:   domain.Details{Height: "6'"},
	}
	b := Completion(&p)

	assert.Equal(t, 10, b.PhotoPoints)
	assert.Equal(t, 10, b.BasicPoints)
	assert.Equal(t, 4, b.InterestPoints)
	assert.Equal(t, 2, b.DetailPoints)
	assert.Equal(t, 26, b.Score)
}
