// Package catalog provides the versioned skill and career reference catalogs
// consumed by the scoring engine. Catalogs are validated once at load time and
// never mutated afterwards; query-time code can rely on every field being
// present and in range.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/careercraft/internal/types"
)

// Catalog holds one revision of the skill and career reference data.
// Skills and Careers keep their declared order; ranking tie-breaks and course
// listings depend on it.
type Catalog struct {
	Version string                   `json:"version" validate:"required"`
	Skills  []types.SkillDefinition  `json:"skills" validate:"min=1,dive"`
	Careers []types.CareerDefinition `json:"careers" validate:"min=1,dive"`

	skillIndex  map[string]*types.SkillDefinition
	careerIndex map[string]*types.CareerDefinition
}

// New builds a catalog from already-assembled definitions, validating it and
// indexing lookups. This is the single constructor; Load and Default both go
// through it.
func New(version string, skills []types.SkillDefinition, careers []types.CareerDefinition) (*Catalog, error) {
	c := &Catalog{
		Version: version,
		Skills:  skills,
		Careers: careers,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.buildIndexes()
	return c, nil
}

// validate fails fast on malformed reference data so query-time code never
// has to handle missing fields.
func (c *Catalog) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("catalog %q failed validation: %w", c.Version, err)
	}

	seenSkills := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if seenSkills[s.Name] {
			return fmt.Errorf("catalog %q: duplicate skill %q", c.Version, s.Name)
		}
		seenSkills[s.Name] = true
	}

	seenCareers := make(map[string]bool, len(c.Careers))
	for _, career := range c.Careers {
		if seenCareers[career.Name] {
			return fmt.Errorf("catalog %q: duplicate career %q", c.Version, career.Name)
		}
		seenCareers[career.Name] = true

		if !knownCategory(career.Category) {
			return fmt.Errorf("catalog %q: career %q has unknown category %q", c.Version, career.Name, career.Category)
		}
		for skill := range career.RequiredSkills {
			if !seenSkills[skill] {
				return fmt.Errorf("catalog %q: career %q requires unknown skill %q", c.Version, career.Name, skill)
			}
		}
	}

	return nil
}

func knownCategory(cat types.Category) bool {
	switch cat {
	case types.CategoryTechnology, types.CategoryHealthcare, types.CategoryBusiness,
		types.CategoryEducation, types.CategoryCommunity, types.CategoryMentalHealth:
		return true
	default:
		return false
	}
}

func (c *Catalog) buildIndexes() {
	c.skillIndex = make(map[string]*types.SkillDefinition, len(c.Skills))
	for i := range c.Skills {
		c.skillIndex[c.Skills[i].Name] = &c.Skills[i]
	}
	c.careerIndex = make(map[string]*types.CareerDefinition, len(c.Careers))
	for i := range c.Careers {
		c.careerIndex[c.Careers[i].Name] = &c.Careers[i]
	}
}

// Skill looks up a skill definition by name. The second return is false for
// unknown names; callers treat that as an empty result, never an error.
func (c *Catalog) Skill(name string) (*types.SkillDefinition, bool) {
	s, ok := c.skillIndex[name]
	return s, ok
}

// Career looks up a career definition by name.
func (c *Catalog) Career(name string) (*types.CareerDefinition, bool) {
	career, ok := c.careerIndex[name]
	return career, ok
}

// SkillNames returns all skill names in catalog order.
func (c *Catalog) SkillNames() []string {
	names := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		names[i] = s.Name
	}
	return names
}

// CareerNames returns all career names in catalog order.
func (c *Catalog) CareerNames() []string {
	names := make([]string, len(c.Careers))
	for i, career := range c.Careers {
		names[i] = career.Name
	}
	return names
}

// Categories returns the distinct categories present, in catalog order.
func (c *Catalog) Categories() []types.Category {
	seen := make(map[types.Category]bool)
	var out []types.Category
	for _, career := range c.Careers {
		if !seen[career.Category] {
			seen[career.Category] = true
			out = append(out, career.Category)
		}
	}
	return out
}
