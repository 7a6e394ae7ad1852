package profile

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
	"github.com/emberapp/ember-backend/internal/seed"
	"github.com/emberapp/ember-backend/internal/usecase/scoring"
)

const (
	defaultAvatarURL = "https://picsum.photos/400/400"
	defaultAge       = 25
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
	}
}

// SignupRequest carries the minimal fields collected at signup.
type SignupRequest struct {
	FirstName    string        `json:"first_name" binding:"required,min=1,max=100"`
	LastName     string        `json:"last_name" binding:"required,min=1,max=100"`
	Email        string        `json:"email" binding:"required,email"`
	Phone        string        `json:"phone" binding:"required,max=30"`
	Gender       domain.Gender `json:"gender" binding:"required,oneof=male female other"`
	InterestedIn domain.Gender `json:"interested_in" binding:"required,oneof=male female other"`
	About        string        `json:"about" binding:"omitempty,max=500"`
}

// UpdateProfileRequest carries the editable profile fields. The editor sends
// the full state, so every field replaces the stored one.
type UpdateProfileRequest struct {
	About           string         `json:"about" binding:"omitempty,max=500"`
	Photos          []string       `json:"photos" binding:"omitempty,max=6"`
	Age             int            `json:"age" binding:"omitempty,min=18,max=100"`
	Work            string         `json:"work" binding:"omitempty,max=100"`
	Education       string         `json:"education" binding:"omitempty,max=100"`
	Hometown        string         `json:"hometown" binding:"omitempty,max=100"`
	CurrentLocation string         `json:"current_location" binding:"omitempty,max=100"`
	Interests       []string       `json:"interests" binding:"omitempty,max=28"`
	Details         domain.Details `json:"details"`
}

// Signup bootstraps the session: creates the user profile with placeholder
// photos and registers it as the single active session.
func (uc *ProfileUseCase) Signup(req *SignupRequest) (*domain.Profile, error) {
	p := &domain.Profile{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       req.Gender,
		InterestedIn: req.InterestedIn,
		About:        req.About,
		AvatarURL:    defaultAvatarURL,
		Photos:       []string{defaultAvatarURL},
		Age:          defaultAge,
		IsOnline:     true,
		Interests:    []string{},
	}

	if err := uc.sessionRepo.Create(p.ID); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

// Me returns the session user's profile.
func (uc *ProfileUseCase) Me() (*domain.Profile, error) {
	id, err := uc.sessionRepo.CurrentProfileID()
	if err != nil {
		return nil, err
	}
	return uc.profileRepo.GetByID(id)
}

// Update applies the editor state to the session profile. Photos are capped
// at domain.MaxPhotos and interests are de-duplicated preserving order.
func (uc *ProfileUseCase) Update(req *UpdateProfileRequest) (*domain.Profile, error) {
	p, err := uc.Me()
	if err != nil {
		return nil, err
	}

	photos := req.Photos
	if len(photos) > domain.MaxPhotos {
		photos = photos[:domain.MaxPhotos]
	}

	p.About = req.About
	p.Photos = photos
	p.Age = req.Age
	p.Work = req.Work
	p.Education = req.Education
	p.Hometown = req.Hometown
	p.CurrentLocation = req.CurrentLocation
	p.Interests = dedupe(req.Interests)
	p.Details = req.Details
	if len(p.Photos) > 0 {
		p.AvatarURL = p.Photos[0]
	}

	if err := uc.profileRepo.Update(p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

// Completion recomputes the session user's completion score. The score is
// derived state and never stored.
func (uc *ProfileUseCase) Completion() (scoring.Breakdown, error) {
	p, err := uc.Me()
	if err != nil {
		return scoring.Breakdown{}, err
	}
	return scoring.Completion(p), nil
}

// GetByID returns any profile, for the people browser and chat partners.
func (uc *ProfileUseCase) GetByID(id string) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(id)
}

// People lists all browsable profiles.
func (uc *ProfileUseCase) People() []*domain.Profile {
	return uc.profileRepo.ListCandidates()
}

// OptionsResponse bundles the editor vocabularies.
type OptionsResponse struct {
	ProfileOptions seed.ProfileOptions `json:"profile_options"`
	Interests      []string            `json:"interests"`
}

// Options returns the closed vocabularies the profile editor offers.
func (uc *ProfileUseCase) Options() OptionsResponse {
	return OptionsResponse{
		ProfileOptions: seed.Options(),
		Interests:      seed.Interests(),
	}
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
