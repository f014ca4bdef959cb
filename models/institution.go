package models

import "slices"

// InstitutionType categorises an institution
type InstitutionType string

// Institution types
const (
	TypeUniversity InstitutionType = "university"
	TypeCollege    InstitutionType = "college"
	TypeVocational InstitutionType = "vocational"
	TypeSecondary  InstitutionType = "secondary"
)

// ProgramLevel is the academic level of a program
type ProgramLevel string

// Program levels
const (
	LevelCertificate ProgramLevel = "certificate"
	LevelDiploma     ProgramLevel = "diploma"
	LevelBachelors   ProgramLevel = "bachelors"
	LevelMasters     ProgramLevel = "masters"
	LevelPhD         ProgramLevel = "phd"
)

// Institution holds the structure for the institutions collection. An
// institution owns its programs; they are stored and deleted with it.
type Institution struct {
	ID            string          `json:"id" bson:"_id"`
	Name          string          `json:"name" bson:"name" validate:"required"`
	Type          InstitutionType `json:"type" bson:"type" validate:"required,oneof=university college vocational secondary"`
	Location      string          `json:"location" bson:"location" validate:"required"`
	Website       string          `json:"website,omitempty" bson:"website,omitempty" validate:"omitempty,url"`
	Description   string          `json:"description" bson:"description" validate:"required"`
	LogoURL       string          `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	CoverImageURL string          `json:"coverImageUrl,omitempty" bson:"coverImageUrl,omitempty"`
	Programs      []Program       `json:"programs" bson:"programs" validate:"dive"`
	Accreditation string          `json:"accreditation,omitempty" bson:"accreditation,omitempty"`
	FoundedYear   int             `json:"foundedYear,omitempty" bson:"foundedYear,omitempty" validate:"omitempty,gt=0"`
	Contact       *Contact        `json:"contact,omitempty" bson:"contact,omitempty"`
	Facilities    []string        `json:"facilities,omitempty" bson:"facilities,omitempty"`
}

// Program is an academic offering of a single institution
type Program struct {
	ID           string       `json:"id" bson:"id"`
	Name         string       `json:"name" bson:"name" validate:"required"`
	Level        ProgramLevel `json:"level" bson:"level" validate:"required,oneof=certificate diploma bachelors masters phd"`
	Duration     string       `json:"duration" bson:"duration" validate:"required"`
	Description  string       `json:"description" bson:"description" validate:"required"`
	Careers      []string     `json:"careers,omitempty" bson:"careers,omitempty"`
	Requirements []string     `json:"requirements,omitempty" bson:"requirements,omitempty"`
	TuitionFees  string       `json:"tuitionFees,omitempty" bson:"tuitionFees,omitempty"`
}

// Contact is embedded in an institution and has no identity of its own
type Contact struct {
	Email   string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

// Clone returns a deep copy so callers never share slices with the store
func (i Institution) Clone() Institution {
	out := i
	out.Facilities = slices.Clone(i.Facilities)
	if i.Contact != nil {
		c := *i.Contact
		out.Contact = &c
	}
	if i.Programs != nil {
		out.Programs = make([]Program, len(i.Programs))
		for n, p := range i.Programs {
			out.Programs[n] = p.Clone()
		}
	}
	return out
}

// Clone returns a copy of the program with its own career and requirement lists
func (p Program) Clone() Program {
	p.Careers = slices.Clone(p.Careers)
	p.Requirements = slices.Clone(p.Requirements)
	return p
}

// InstitutionPatch is a partial update. Nil fields keep the stored value.
type InstitutionPatch struct {
	Name          *string          `json:"name"`
	Type          *InstitutionType `json:"type"`
	Location      *string          `json:"location"`
	Website       *string          `json:"website"`
	Description   *string          `json:"description"`
	LogoURL       *string          `json:"logoUrl"`
	CoverImageURL *string          `json:"coverImageUrl"`
	Programs      *[]Program       `json:"programs"`
	Accreditation *string          `json:"accreditation"`
	FoundedYear   *int             `json:"foundedYear"`
	Contact       *Contact         `json:"contact"`
	Facilities    *[]string        `json:"facilities"`
}

// Apply merges the patch over inst and returns the result. The id is never changed.
func (p InstitutionPatch) Apply(inst Institution) Institution {
	out := inst.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Website != nil {
		out.Website = *p.Website
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.LogoURL != nil {
		out.LogoURL = *p.LogoURL
	}
	if p.CoverImageURL != nil {
		out.CoverImageURL = *p.CoverImageURL
	}
	if p.Programs != nil {
		out.Programs = slices.Clone(*p.Programs)
	}
	if p.Accreditation != nil {
		out.Accreditation = *p.Accreditation
	}
	if p.FoundedYear != nil {
		out.FoundedYear = *p.FoundedYear
	}
	if p.Contact != nil {
		c := *p.Contact
		out.Contact = &c
	}
	if p.Facilities != nil {
		out.Facilities = slices.Clone(*p.Facilities)
	}
	return out
}
