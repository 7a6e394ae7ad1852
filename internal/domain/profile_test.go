package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasBasic(t *testing.T) {
	var empty Profile
	for _, f := range BasicFields {
		assert.False(t, empty.HasBasic(f))
	}

	full := Profile{
		About:           "hi",
		Age:             30,
		Gender:          GenderFemale,
		CurrentLocation: "SF",
		Work:            "Chef",
		Education:       "CIA",
	}
	for _, f := range BasicFields {
		assert.True(t, full.HasBasic(f))
	}
}

func TestDetailsHas(t *testing.T) {
	var empty Details
	for _, f := range DetailFields {
		assert.False(t, empty.Has(f))
	}

	full := Details{
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
	for _, f := range DetailFields {
		assert.True(t, full.Has(f))
	}

	// HaveKids and EducationLevel are displayed but not on the checklist.
	displayOnly := Details{HaveKids: "Yes", EducationLevel: "Postgrad"}
	for _, f := range DetailFields {
		assert.False(t, displayOnly.Has(f))
	}
}

func TestProfileCloneIsIndependent(t *testing.T) {
	orig := Profile{
		ID:        "1",
		FirstName: "Sarah",
		Photos:    []string{"a", "b"},
		Interests: []string{"Yoga"},
		Details:   Details{Languages: []string{"English"}},
	}

	cp := orig.Clone()
	cp.FirstName = "Changed"
	cp.Photos[0] = "changed"
	cp.Interests = append(cp.Interests, "Hiking")
	cp.Details.Languages[0] = "changed"

	assert.Equal(t, "Sarah", orig.FirstName)
	assert.Equal(t, "a", orig.Photos[0])
	assert.Len(t, orig.Interests, 1)
	assert.Equal(t, "English", orig.Details.Languages[0])
}

func TestConversationCloneIsIndependent(t *testing.T) {
	orig := Conversation{
		ID:       "c1",
		Messages: []Message{{ID: "m1", Text: "hey"}},
	}

	cp := orig.Clone()
	cp.Messages[0].Text = "changed"
	cp.Messages = append(cp.Messages, Message{ID: "m2"})

	assert.Equal(t, "hey", orig.Messages[0].Text)
	assert.Len(t, orig.Messages, 1)
}

func TestMessageIsGift(t *testing.T) {
	assert.True(t, (&Message{GiftID: "rose"}).IsGift())
	assert.False(t, (&Message{Text: "hi"}).IsGift())
}

func TestSwipeDirectionValid(t *testing.T) {
	assert.True(t, SwipeLike.Valid())
	assert.True(t, SwipeReject.Valid())
	assert.True(t, SwipeSuperlike.Valid())
	assert.False(t, SwipeDirection("up").Valid())
}
