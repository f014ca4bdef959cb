package databases

import (
	"time"

	"github.com/rwandapathways/pathways-api/models"
)

func samplePrograms() []models.Program {
	return []models.Program{
		{
			ID:           "1",
			Name:         "Computer Science",
			Level:        models.LevelBachelors,
			Duration:     "4 years",
			Description:  "A comprehensive program covering software development, algorithms, data structures, and computer systems.",
			Careers:      []string{"Software Developer", "Systems Analyst", "Database Administrator"},
			Requirements: []string{"Mathematics", "Physics", "Computer Studies"},
			TuitionFees:  "1,200,000 RWF per year",
		},
		{
			ID:           "2",
			Name:         "Business Administration",
			Level:        models.LevelBachelors,
			Duration:     "3 years",
			Description:  "Study of business operations including accounting, finance, marketing, and management.",
			Careers:      []string{"Business Manager", "Marketing Specialist", "Entrepreneur"},
			Requirements: []string{"Economics", "Mathematics", "English"},
			TuitionFees:  "1,000,000 RWF per year",
		},
		{
			ID:           "3",
			Name:         "Medicine",
			Level:        models.LevelBachelors,
			Duration:     "6 years",
			Description:  "Comprehensive medical education preparing students for careers as physicians.",
			Careers:      []string{"Doctor", "Medical Researcher", "Public Health Specialist"},
			Requirements: []string{"Biology", "Chemistry", "Physics", "Mathematics"},
			TuitionFees:  "1,500,000 RWF per year",
		},
		{
			ID:           "4",
			Name:         "Agricultural Sciences",
			Level:        models.LevelBachelors,
			Duration:     "4 years",
			Description:  "Study of agriculture, farming systems, crop production, and sustainable practices.",
			Careers:      []string{"Agricultural Scientist", "Farm Manager", "Agricultural Consultant"},
			Requirements: []string{"Biology", "Chemistry", "Mathematics"},
			TuitionFees:  "900,000 RWF per year",
		},
		{
			ID:           "5",
			Name:         "Electrical Engineering",
			Level:        models.LevelBachelors,
			Duration:     "4 years",
			Description:  "Study of electrical systems, electronics, power generation, and telecommunications.",
			Careers:      []string{"Electrical Engineer", "Electronics Engineer", "Power Systems Engineer"},
			Requirements: []string{"Physics", "Mathematics", "Chemistry"},
			TuitionFees:  "1,300,000 RWF per year",
		},
	}
}

// SampleInstitutions returns the directory's sample institutions. Each call
// returns fresh copies.
func SampleInstitutions() []models.Institution {
	p := samplePrograms()
	pick := func(idx ...int) []models.Program {
		out := make([]models.Program, 0, len(idx))
		for _, i := range idx {
			out = append(out, p[i].Clone())
		}
		return out
	}
	return []models.Institution{
		{
			ID:            "1",
			Name:          "University of Rwanda",
			Type:          models.TypeUniversity,
			Location:      "Kigali, Rwanda",
			Website:       "https://ur.ac.rw",
			Description:   "The University of Rwanda is the largest and most comprehensive university in Rwanda, offering a wide range of programs across multiple disciplines.",
			LogoURL:       "/placeholder.svg",
			CoverImageURL: "/placeholder.svg",
			Programs:      pick(0, 1, 2),
			Accreditation: "National Council for Higher Education",
			FoundedYear:   2013,
			Contact:       &models.Contact{Email: "info@ur.ac.rw", Phone: "+250 788 123 456", Address: "KK 737 St, Kigali"},
			Facilities:    []string{"Library", "Computer Labs", "Sports Facilities", "Student Center"},
		},
		{
			ID:            "2",
			Name:          "Rwanda Polytechnic",
			Type:          models.TypeVocational,
			Location:      "Kigali, Rwanda",
			Website:       "https://rp.ac.rw",
			Description:   "Rwanda Polytechnic is a public institution focusing on technical and vocational education and training.",
			LogoURL:       "/placeholder.svg",
			CoverImageURL: "/placeholder.svg",
			Programs:      pick(3, 4),
			Accreditation: "National Council for Higher Education",
			FoundedYear:   2017,
			Contact:       &models.Contact{Email: "info@rp.ac.rw", Phone: "+250 788 456 789", Address: "KG 15 Ave, Kigali"},
			Facilities:    []string{"Workshops", "Laboratories", "Library", "Sports Grounds"},
		},
		{
			ID:            "3",
			Name:          "African Leadership University",
			Type:          models.TypeUniversity,
			Location:      "Kigali, Rwanda",
			Website:       "https://www.alueducation.com",
			Description:   "African Leadership University is an innovative institution developing the next generation of African leaders.",
			LogoURL:       "/placeholder.svg",
			CoverImageURL: "/placeholder.svg",
			Programs:      pick(0, 1),
			Accreditation: "National Council for Higher Education",
			FoundedYear:   2015,
			Contact:       &models.Contact{Email: "info@alueducation.com", Phone: "+250 788 789 123", Address: "Kigali Innovation City, Kigali"},
			Facilities:    []string{"Modern Classrooms", "Innovation Hub", "Co-working Spaces", "Library"},
		},
		{
			ID:            "4",
			Name:          "Kepler",
			Type:          models.TypeCollege,
			Location:      "Kigali, Rwanda",
			Website:       "https://www.kepler.org",
			Description:   "Kepler is an innovative higher education program that prepares students for the global workplace.",
			LogoURL:       "/placeholder.svg",
			CoverImageURL: "/placeholder.svg",
			Programs:      pick(1),
			Accreditation: "Southern New Hampshire University",
			FoundedYear:   2013,
			Contact:       &models.Contact{Email: "info@kepler.org", Phone: "+250 788 321 654", Address: "KK 15 Rd, Kigali"},
			Facilities:    []string{"Computer Labs", "Study Areas", "Student Lounge"},
		},
		{
			ID:            "5",
			Name:          "INES Ruhengeri",
			Type:          models.TypeUniversity,
			Location:      "Musanze, Rwanda",
			Website:       "https://www.ines.ac.rw",
			Description:   "Institut d'Enseignement Supérieur de Ruhengeri is a private institution offering quality education in various fields.",
			LogoURL:       "/placeholder.svg",
			CoverImageURL: "/placeholder.svg",
			Programs:      pick(0, 4),
			Accreditation: "National Council for Higher Education",
			FoundedYear:   2003,
			Contact:       &models.Contact{Email: "info@ines.ac.rw", Phone: "+250 788 654 321", Address: "Musanze, Northern Province"},
			Facilities:    []string{"Library", "Computer Labs", "Cafeteria", "Sports Grounds"},
		},
	}
}

func day(d int) time.Time {
	return time.Date(2023, time.January, d, 0, 0, 0, 0, time.UTC)
}

// SampleUsers returns the sample admin, student and counselors
func SampleUsers() []models.User {
	return []models.User{
		{ID: "1", Email: "admin@rwandapathways.com", Name: "Admin User", Role: models.RoleAdmin, AvatarURL: "/placeholder.svg", CreatedAt: day(1)},
		{ID: "2", Email: "student@example.com", Name: "Jean Kwizera", Role: models.RoleStudent, AvatarURL: "/placeholder.svg", Bio: "Secondary school graduate interested in technology and business.", CreatedAt: day(2)},
		{ID: "3", Email: "counselor@ur.ac.rw", Name: "Dr. Alice Mutoni", Role: models.RoleCounselor, AvatarURL: "/placeholder.svg", Bio: "Career counselor with 10 years of experience guiding students.", CreatedAt: day(3)},
		{ID: "4", Email: "counselor@rp.ac.rw", Name: "Emmanuel Mugisha", Role: models.RoleCounselor, AvatarURL: "/placeholder.svg", Bio: "Specializing in vocational education guidance and career development.", CreatedAt: day(4)},
	}
}

func at(h, m int) time.Time {
	return time.Date(2023, time.April, 1, h, m, 0, 0, time.UTC)
}

// SampleMessages returns the sample exchange between the student and a counselor
func SampleMessages() []models.Message {
	return []models.Message{
		{ID: "1", SenderID: "2", ReceiverID: "3", Content: "Hello Dr. Mutoni, I'm interested in learning more about the Computer Science program at the University of Rwanda.", Timestamp: at(10, 30), Read: true},
		{ID: "2", SenderID: "3", ReceiverID: "2", Content: "Hello Jean, I'd be happy to provide more information. What specific aspects of the program are you interested in?", Timestamp: at(11, 15), Read: true},
		{ID: "3", SenderID: "2", ReceiverID: "3", Content: "I'm particularly interested in the career prospects and internship opportunities available to students.", Timestamp: at(11, 45), Read: false},
	}
}
