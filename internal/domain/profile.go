package domain

// MaxPhotos is the hard cap on photos a profile may carry; the first photo
// doubles as the main avatar.
const MaxPhotos = 6

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Profile struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Gender          Gender   `json:"gender"`
	InterestedIn    Gender   `json:"interested_in"`
	About           string   `json:"about"`
	AvatarURL       string   `json:"avatar_url"`
	Photos          []string `json:"photos"`
	Age             int      `json:"age"`
	IsOnline        bool     `json:"is_online"`
	DistanceMiles   int      `json:"distance_miles"`
	Work            string   `json:"work"`
	Education       string   `json:"education"`
	Hometown        string   `json:"hometown"`
	CurrentLocation string   `json:"current_location"`
	Interests       []string `json:"interests"`
	Details         Details  `json:"details"`
}

// Details holds the optional lifestyle attributes shown in the "more about
// you" section. HaveKids and EducationLevel are displayed but deliberately
// not part of the completion checklist.
type Details struct {
	Height         string   `json:"height,omitempty"`
	Exercise       string   `json:"exercise,omitempty"`
	Drinking       string   `json:"drinking,omitempty"`
	Smoking        string   `json:"smoking,omitempty"`
	LookingFor     string   `json:"looking_for,omitempty"`
	Kids           string   `json:"kids,omitempty"`
	HaveKids       string   `json:"have_kids,omitempty"`
	EducationLevel string   `json:"education_level,omitempty"`
	StarSign       string   `json:"star_sign,omitempty"`
	Politics       string   `json:"politics,omitempty"`
	Religion       string   `json:"religion,omitempty"`
	Languages      []string `json:"languages,omitempty"`
}

// Clone returns a deep copy that can be read or mutated independently of the
// original, including the photo, interest and language slices.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Photos = append([]string(nil), p.Photos...)
	cp.Interests = append([]string(nil), p.Interests...)
	cp.Details.Languages = append([]string(nil), p.Details.Languages...)
	return &cp
}

// BasicField enumerates the six profile basics that count toward completion.
type BasicField int

const (
	BasicAbout BasicField = iota
	BasicAge
	BasicGender
	BasicCurrentLocation
	BasicWork
	BasicEducation
)

// BasicFields is the fixed checklist order used by the scoring engine.
var BasicFields = [...]BasicField{
	BasicAbout, BasicAge, BasicGender,
	BasicCurrentLocation, BasicWork, BasicEducation,
}

// HasBasic reports whether the given basic field is filled in. It is the
// single presence predicate shared by scoring and display.
func (p *Profile) HasBasic(f BasicField) bool {
	switch f {
	case BasicAbout:
		return p.About != ""
	case BasicAge:
		return p.Age > 0
	case BasicGender:
		return p.Gender != ""
	case BasicCurrentLocation:
		return p.CurrentLocation != ""
	case BasicWork:
		return p.Work != ""
	case BasicEducation:
		return p.Education != ""
	default:
		return false
	}
}

// DetailField enumerates the ten detail fields that count toward completion.
type DetailField int

const (
	DetailHeight DetailField = iota
	DetailExercise
	DetailDrinking
	DetailSmoking
	DetailLookingFor
	DetailKids
	DetailStarSign
	DetailPolitics
	DetailReligion
	DetailLanguages
)

// DetailFields is the fixed completion checklist. Adding a field here changes
// the scoring weights, so the set is closed on purpose.
var DetailFields = [...]DetailField{
	DetailHeight, DetailExercise, DetailDrinking, DetailSmoking,
	DetailLookingFor, DetailKids, DetailStarSign, DetailPolitics,
	DetailReligion, DetailLanguages,
}

// Has reports whether the given detail field carries a value. Languages is a
// collection and counts when non-empty.
func (d *Details) Has(f DetailField) bool {
	switch f {
	case DetailHeight:
		return d.Height != ""
	case DetailExercise:
		return d.Exercise != ""
	case DetailDrinking:
		return d.Drinking != ""
	case DetailSmoking:
		return d.Smoking != ""
	case DetailLookingFor:
		return d.LookingFor != ""
	case DetailKids:
		return d.Kids != ""
	case DetailStarSign:
		return d.StarSign != ""
	case DetailPolitics:
		return d.Politics != ""
	case DetailReligion:
		return d.Religion != ""
	case DetailLanguages:
		return len(d.Languages) > 0
	default:
		return false
	}
}
