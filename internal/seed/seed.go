// Package seed provides the static dataset the app boots with: the candidate
// profiles, the gift catalog, the profile option vocabularies and the
// pre-existing conversations. It stands in for a backend and is injected into
// the repositories at startup.
package seed

import (
	"time"

	"github.com/emberapp/ember-backend/internal/domain"
)

// Gifts returns the gift catalog.
func Gifts() []domain.Gift {
	return []domain.Gift{
		{ID: "rose", Name: "Rose", Icon: "🌹", Cost: 10},
		{ID: "heart", Name: "Heart", Icon: "❤️", Cost: 25},
		{ID: "chocolate", Name: "Chocolate", Icon: "🍫", Cost: 50},
		{ID: "diamond", Name: "Diamond", Icon: "💎", Cost: 100},
		{ID: "ring", Name: "Ring", Icon: "💍", Cost: 500},
	}
}

// ProfileOptions is the closed vocabulary for each editable detail field.
type ProfileOptions struct {
	EducationLevel []string `json:"education_level"`
	Drinking       []string `json:"drinking"`
	Smoking        []string `json:"smoking"`
	LookingFor     []string `json:"looking_for"`
	Kids           []string `json:"kids"`
	HaveKids       []string `json:"have_kids"`
	StarSign       []string `json:"star_sign"`
	Politics       []string `json:"politics"`
	Religion       []string `json:"religion"`
	Exercise       []string `json:"exercise"`
	Languages      []string `json:"languages"`
}

func Options() ProfileOptions {
	return ProfileOptions{
		EducationLevel: []string{"High School", "Undergrad", "Postgrad", "PhD", "Trade School"},
		Drinking:       []string{"Socially", "Never", "Frequently", "Sober"},
		Smoking:        []string{"Socially", "Never", "Regularly", "Trying to quit"},
		LookingFor:     []string{"Relationship", "Casual", "Don't know yet", "Marriage"},
		Kids:           []string{"Want someday", "Don't want", "Have & want more", "Have & don't want more"},
		HaveKids:       []string{"No", "Yes", "Yes, they live with me", "Yes, they live away"},
		StarSign: []string{
			"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
			"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
		},
		Politics: []string{"Liberal", "Moderate", "Conservative", "Apolitical", "Other"},
		Religion: []string{
			"Agnostic", "Atheist", "Christian", "Muslim", "Jewish",
			"Buddhist", "Hindu", "Other", "Spiritual",
		},
		Exercise: []string{"Active", "Sometimes", "Almost never", "Every day"},
		Languages: []string{
			"English", "Spanish", "French", "German", "Chinese", "Japanese",
			"Korean", "Italian", "Portuguese", "Russian", "Arabic", "Hindi",
		},
	}
}

// Interests is the pickable interest tag vocabulary.
func Interests() []string {
	return []string{
		"Photography", "Traveling", "Cooking", "Music", "Hiking", "Yoga", "Gaming",
		"Art", "Reading", "Movies", "Gym", "Coffee", "Wine", "Dancing", "Pets",
		"Politics", "Fashion", "Writing", "Running", "Swimming", "Camping", "Baking",
		"Volunteering", "Gardening", "Board Games", "Surfing", "Skiing", "Cycling",
	}
}

// Profiles returns the candidate profiles for the discovery feed.
func Profiles() []*domain.Profile {
	return []*domain.Profile{
		{
			ID:           "1",
			FirstName:    "Jessica",
			LastName:     "Alba",
			Age:          24,
			Gender:       domain.GenderFemale,
			InterestedIn: domain.GenderMale,
			Email:        "jess@example.com",
			Phone:        "555-0101",
			About:        "Lover of hiking, coffee, and code. Looking for someone to share adventures with.",
			AvatarURL:    "https://picsum.photos/400/600?random=1",
			Photos: []string{
				"https://picsum.photos/400/600?random=1",
				"https://picsum.photos/400/600?random=11",
				"https://picsum.photos/400/600?random=12",
			},
			IsOnline:        true,
			DistanceMiles:   2,
			Work:            "Software Engineer",
			Education:       "Stanford University",
			Hometown:        "Los Angeles",
			CurrentLocation: "San Francisco, CA",
			Interests:       []string{"Hiking", "Coffee", "Coding", "Movies"},
			Details: domain.Details{
				Height:     "5'7\"",
				Exercise:   "Active",
				Drinking:   "Socially",
				Smoking:    "Never",
				StarSign:   "Taurus",
				LookingFor: "Relationship",
				Languages:  []string{"English", "Spanish"},
			},
		},
		{
			ID:              "2",
			FirstName:       "David",
			LastName:        "Chen",
			Age:             28,
			Gender:          domain.GenderMale,
			InterestedIn:    domain.GenderFemale,
			Email:           "david@example.com",
			Phone:           "555-0102",
			About:           "Chef by day, gamer by night. I make the best lasagna you will ever taste.",
			AvatarURL:       "https://picsum.photos/400/601?random=2",
			Photos:          []string{"https://picsum.photos/400/601?random=2"},
			IsOnline:        false,
			DistanceMiles:   5,
			Work:            "Head Chef",
			Education:       "Culinary Institute",
			Hometown:        "New York",
			CurrentLocation: "San Francisco, CA",
			Interests:       []string{"Cooking", "Gaming", "Food"},
			Details: domain.Details{
				StarSign: "Leo",
				Drinking: "Socially",
			},
		},
		{
			ID:            "3",
			FirstName:     "Sarah",
			LastName:      "Jones",
			Age:           26,
			Gender:        domain.GenderFemale,
			InterestedIn:  domain.GenderMale,
			Email:         "sarah@example.com",
			Phone:         "555-0103",
			About:         "Art enthusiast and museum hopper. Let's paint the town red!",
			AvatarURL:     "https://picsum.photos/400/602?random=3",
			Photos:        []string{"https://picsum.photos/400/602?random=3"},
			IsOnline:      true,
			DistanceMiles: 12,
			Interests:     []string{"Art", "Museums", "Painting"},
		},
		{
			ID:            "4",
			FirstName:     "Michael",
			LastName:      "Ross",
			Age:           30,
			Gender:        domain.GenderMale,
			InterestedIn:  domain.GenderFemale,
			Email:         "mike@example.com",
			Phone:         "555-0104",
			About:         "Entrepreneur building the next big thing. Need a partner in crime.",
			AvatarURL:     "https://picsum.photos/400/603?random=4",
			Photos:        []string{"https://picsum.photos/400/603?random=4"},
			IsOnline:      true,
			DistanceMiles: 1,
			Work:          "Founder",
			Interests:     []string{"Business", "Tech"},
		},
		{
			ID:            "5",
			FirstName:     "Emily",
			LastName:      "Blunt",
			Age:           22,
			Gender:        domain.GenderFemale,
			InterestedIn:  domain.GenderMale,
			Email:         "emily@example.com",
			Phone:         "555-0105",
			About:         "Student of life. Yoga instructor. Good vibes only ✨",
			AvatarURL:     "https://picsum.photos/400/604?random=5",
			Photos:        []string{"https://picsum.photos/400/604?random=5"},
			IsOnline:      false,
			DistanceMiles: 8,
			Work:          "Yoga Instructor",
			Interests:     []string{"Yoga", "Meditation", "Wellness"},
		},
	}
}

// Conversations returns the pre-existing chats, oldest last.
func Conversations(now time.Time) []*domain.Conversation {
	return []*domain.Conversation{
		{
			ID:           "c1",
			PartnerID:    "2",
			LastMessage:  "Hey! Nice profile.",
			UnreadCount:  1,
			LastActivity: now,
			Messages: []domain.Message{
				{ID: "c1-m1", SenderID: "2", Text: "Hey! Nice profile.", Timestamp: now, IsRead: false},
			},
		},
		{
			ID:           "c2",
			PartnerID:    "3",
			LastMessage:  "Would love to grab coffee!",
			UnreadCount:  0,
			LastActivity: now.Add(-time.Hour),
			Messages: []domain.Message{
				{ID: "c2-m1", SenderID: "3", Text: "Would love to grab coffee!", Timestamp: now.Add(-time.Hour), IsRead: true},
			},
		},
	}
}

// LikedYouIDs returns the profiles that already liked the session user.
func LikedYouIDs() []string {
	return []string{"1", "2", "3"}
}
