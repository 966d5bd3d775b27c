package form

import (
	"strings"

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueForm is the venue create/edit form as submitted by the browser.
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,state"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"required,min=10,max=12,phone"`
	ImageLink          string   `form:"image_link" validate:"max=500"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"required,max=120,url"`
	WebsiteLink        string   `form:"website_link" validate:"max=120"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// Normalize trims surrounding whitespace from every text field.
func (f *VenueForm) Normalize() {
	for _, p := range []*string{&f.Name, &f.City, &f.State, &f.Address, &f.Phone,
		&f.ImageLink, &f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription} {
		*p = strings.TrimSpace(*p)
	}
	f.State = strings.ToUpper(f.State)
}

// Validate returns the field errors, or nil when the form is acceptable.
func (f *VenueForm) Validate() Errors {
	return check(f)
}

// Seeking reports whether the seeking_talent box was ticked.
func (f *VenueForm) Seeking() bool { return checked(f.SeekingTalent) }

// HasGenre is used by the templates to preselect genres.
func (f *VenueForm) HasGenre(g model.Genre) bool { return hasGenre(f.Genres, g) }

// Apply copies the form onto v, replacing every mutable field.  The form
// must have passed Validate.
func (f *VenueForm) Apply(v *model.Venue) {
	gs, _ := model.ParseGenres(f.Genres)
	v.Name = f.Name
	v.Genres = gs
	v.Address = f.Address
	v.City = f.City
	v.State = model.State(f.State)
	v.Phone = f.Phone
	v.Website = f.WebsiteLink
	v.FacebookLink = f.FacebookLink
	v.ImageLink = f.ImageLink
	v.SeekingTalent = f.Seeking()
	v.SeekingDescription = f.SeekingDescription
}

// FromVenue builds a form prefilled with v, for the edit page.
func FromVenue(v *model.Venue) *VenueForm {
	return &VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              string(v.State),
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             model.GenreStrings(v.Genres),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.Website,
		SeekingTalent:      checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistForm is the artist create/edit form.
type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,state"`
	Phone              string   `form:"phone" validate:"required,min=10,max=12,phone"`
	ImageLink          string   `form:"image_link" validate:"max=500"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"required,max=120,url"`
	WebsiteLink        string   `form:"website_link" validate:"max=120"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

func (f *ArtistForm) Normalize() {
	for _, p := range []*string{&f.Name, &f.City, &f.State, &f.Phone,
		&f.ImageLink, &f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription} {
		*p = strings.TrimSpace(*p)
	}
	f.State = strings.ToUpper(f.State)
}

func (f *ArtistForm) Validate() Errors {
	return check(f)
}

func (f *ArtistForm) Seeking() bool { return checked(f.SeekingVenue) }

func (f *ArtistForm) HasGenre(g model.Genre) bool { return hasGenre(f.Genres, g) }

// Apply copies the form onto a, replacing every mutable field.
func (f *ArtistForm) Apply(a *model.Artist) {
	gs, _ := model.ParseGenres(f.Genres)
	a.Name = f.Name
	a.Genres = gs
	a.City = f.City
	a.State = model.State(f.State)
	a.Phone = f.Phone
	a.Website = f.WebsiteLink
	a.FacebookLink = f.FacebookLink
	a.ImageLink = f.ImageLink
	a.SeekingVenue = f.Seeking()
	a.SeekingDescription = f.SeekingDescription
}

// FromArtist builds a form prefilled with a.
func FromArtist(a *model.Artist) *ArtistForm {
	return &ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              string(a.State),
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             model.GenreStrings(a.Genres),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.Website,
		SeekingVenue:       checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

func hasGenre(ss []string, g model.Genre) bool {
	for _, s := range ss {
		if s == string(g) {
			return true
		}
	}
	return false
}
