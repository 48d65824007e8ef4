package models

import (
	"slices"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguagePortuguese Language = "pt"
)

const (
	DefaultLanguage = LanguageEnglish
	DefaultTimezone = "UTC"
)

// Timezones lists the zones a profile may pick.
var Timezones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Asia/Kolkata",
	"Australia/Sydney",
	"America/Sao_Paulo",
	"Asia/Tokyo",
	"Pacific/Auckland",
}

func IsKnownTimezone(tz string) bool {
	return slices.Contains(Timezones, tz)
}

// Profile carries the display attributes of a User, 1:1.
type Profile struct {
	UserID     string
	Name       string
	MiddleName string
	LastName   string
	BirthDate  *time.Time
	Gender     Gender
	Language   Language
	Timezone   string
	Picture    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfilePatch changes only the non-nil fields.
type ProfilePatch struct {
	Name       *string   `json:"name,omitempty" validate:"omitempty,max=255"`
	MiddleName *string   `json:"middle_name,omitempty" validate:"omitempty,max=255"`
	LastName   *string   `json:"last_name,omitempty" validate:"omitempty,max=255"`
	BirthDate  *string   `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender     *Gender   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Language   *Language `json:"language,omitempty" validate:"omitempty,oneof=en es pt"`
	Timezone   *string   `json:"timezone,omitempty" validate:"omitempty,timezone_choice"`
	Picture    *string   `json:"picture,omitempty" validate:"omitempty,max=255"`
}

// Apply copies the set fields onto p. BirthDate must already be validated.
func (pp *ProfilePatch) Apply(p *Profile) error {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.MiddleName != nil {
		p.MiddleName = *pp.MiddleName
	}
	if pp.LastName != nil {
		p.LastName = *pp.LastName
	}
	if pp.BirthDate != nil {
		d, err := time.Parse(time.DateOnly, *pp.BirthDate)
		if err != nil {
			return err
		}
		p.BirthDate = &d
	}
	if pp.Gender != nil {
		p.Gender = *pp.Gender
	}
	if pp.Language != nil {
		p.Language = *pp.Language
	}
	if pp.Timezone != nil {
		p.Timezone = *pp.Timezone
	}
	if pp.Picture != nil {
		p.Picture = *pp.Picture
	}
	return nil
}
