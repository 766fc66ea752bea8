package profile

// Store exposes the published résumé to handlers and the answering service.
type Store interface {
	Get() Profile
	SkillsByCategory(category SkillCategory) []Skill
}

// MemoryStore implements Store over a single in-memory profile.
type MemoryStore struct {
	profile Profile
}

// NewMemoryStore returns a MemoryStore holding a private copy of p.
func NewMemoryStore(p Profile) *MemoryStore {
	return &MemoryStore{profile: clone(p)}
}

// Get returns a copy of the stored profile.
func (s *MemoryStore) Get() Profile {
	return clone(s.profile)
}

// SkillsByCategory returns the skills of one category in display order.
func (s *MemoryStore) SkillsByCategory(category SkillCategory) []Skill {
	var out []Skill
	for _, skill := range s.profile.Skills {
		if skill.Category == category {
			out = append(out, skill)
		}
	}
	return out
}

func clone(p Profile) Profile {
	p.Skills = append([]Skill(nil), p.Skills...)
	p.Education = append([]Education(nil), p.Education...)
	p.Certifications = append([]Certification(nil), p.Certifications...)

	experience := make([]Experience, len(p.Experience))
	for i, item := range p.Experience {
		item.Highlights = append([]string(nil), item.Highlights...)
		experience[i] = item
	}
	p.Experience = experience
	return p
}
