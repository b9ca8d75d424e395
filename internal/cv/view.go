package cv

import (
	"strings"
	"time"

	"prolinked-backend/internal/domain"
)

type labels struct {
	Experience string
	Education  string
	Profile    string
	Languages  string
	Skills     string
	Present    string
}

var labelsByLanguage = map[string]labels{
	"de": {
		Experience: "Berufserfahrung",
		Education:  "Ausbildung",
		Profile:    "Profil",
		Languages:  "Sprachkenntnisse",
		Skills:     "Fachliche Kompetenzen",
		Present:    "heute",
	},
	"en": {
		Experience: "Work Experience",
		Education:  "Education",
		Profile:    "Profile",
		Languages:  "Languages",
		Skills:     "Skills",
		Present:    "present",
	},
}

type view struct {
	Lang        string
	Labels      labels
	Name        string
	Headline    string
	Summary     string
	Email       string
	Location    string
	Experiences []experienceView
	Educations  []educationView
	Languages   []domain.Language
	Skills      []domain.Skill
}

type experienceView struct {
	Position    string
	CompanyName string
	Period      string
	Description string
}

type educationView struct {
	Title       string
	Institution string
	Period      string
}

func newView(doc *domain.CVDocument) view {
	lang := doc.Template.Language
	l, ok := labelsByLanguage[lang]
	if !ok {
		lang = "de"
		l = labelsByLanguage[lang]
	}

	v := view{
		Lang:      lang,
		Labels:    l,
		Name:      doc.DisplayName,
		Headline:  doc.Headline,
		Summary:   doc.Summary,
		Email:     doc.Email,
		Languages: doc.Languages,
		Skills:    doc.Skills,
	}
	if doc.Profile != nil {
		v.Location = deref(doc.Profile.TargetCountry)
	}

	for _, e := range doc.Experiences {
		end := monthYear(e.EndDate)
		if e.IsCurrent {
			end = l.Present
		}
		v.Experiences = append(v.Experiences, experienceView{
			Position:    e.Position,
			CompanyName: e.CompanyName,
			Period:      period(monthYear(e.StartDate), end),
			Description: deref(e.Description),
		})
	}
	for _, e := range doc.Educations {
		title := strings.TrimSpace(strings.Join(nonEmpty(deref(e.Degree), deref(e.FieldOfStudy)), ", "))
		if title == "" {
			title = e.Institution
		}
		v.Educations = append(v.Educations, educationView{
			Title:       title,
			Institution: e.Institution,
			Period:      period(monthYear(e.StartDate), monthYear(e.EndDate)),
		})
	}
	return v
}

// monthYear formats a YYYY-MM-DD date as MM/YYYY.
func monthYear(date *string) string {
	if date == nil || *date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return *date
	}
	return t.Format("01/2006")
}

func period(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	default:
		return end
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
