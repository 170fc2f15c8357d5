package catalog

import (
	"fmt"

	"github.com/jonathan/careercraft/internal/types"
)

// DefaultVersion tags the built-in catalog revision.
const DefaultVersion = "2.1"

// Default returns the built-in catalog (revision 2.1): 8 skills and 28
// careers across six categories. The data is static and covered by tests, so
// a validation failure here is a programmer error.
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultSkills(), defaultCareers())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

func defaultSkills() []types.SkillDefinition {
	return []types.SkillDefinition{
		{
			Name:          "Programming",
			Description:   "Writing code, software development, scripting",
			SalaryPremium: 15000,
			DemandTrend:   "High Growth",
			Courses: []types.CourseOption{
				{Name: "Python for Everybody (Coursera)", Cost: 0, Duration: "8 weeks", ROI: 250},
				{Name: "CS50 (Harvard/edX)", Cost: 0, Duration: "12 weeks", ROI: 300},
				{Name: "Full Stack Bootcamp", Cost: 12000, Duration: "12 weeks", ROI: 180},
			},
		},
		{
			Name:          "Problem Solving",
			Description:   "Analytical thinking, troubleshooting, decision-making",
			SalaryPremium: 12000,
			DemandTrend:   "Stable High",
			Courses: []types.CourseOption{
				{Name: "Design Thinking (IDEO)", Cost: 400, Duration: "4 weeks", ROI: 200},
				{Name: "Critical Thinking Specialization", Cost: 50, Duration: "6 weeks", ROI: 280},
			},
		},
		{
			Name:          "Critical Thinking",
			Description:   "Evaluating information, logical reasoning, analysis",
			SalaryPremium: 10000,
			DemandTrend:   "Stable High",
			Courses: []types.CourseOption{
				{Name: "Think Again (Coursera)", Cost: 0, Duration: "4 weeks", ROI: 350},
				{Name: "Logical and Critical Thinking", Cost: 50, Duration: "6 weeks", ROI: 300},
			},
		},
		{
			Name:          "Communication",
			Description:   "Written and verbal communication, presentations",
			SalaryPremium: 8000,
			DemandTrend:   "Stable High",
			Courses: []types.CourseOption{
				{Name: "Business Writing (LinkedIn Learning)", Cost: 30, Duration: "3 weeks", ROI: 400},
				{Name: "Public Speaking Mastery", Cost: 100, Duration: "4 weeks", ROI: 350},
			},
		},
		{
			Name:          "Teamwork",
			Description:   "Collaboration, conflict resolution, group dynamics",
			SalaryPremium: 6000,
			DemandTrend:   "Stable",
			Courses: []types.CourseOption{
				{Name: "Teamwork Skills (Coursera)", Cost: 0, Duration: "4 weeks", ROI: 300},
				{Name: "Collaborative Leadership", Cost: 200, Duration: "6 weeks", ROI: 250},
			},
		},
		{
			Name:          "Time Management",
			Description:   "Prioritization, scheduling, productivity",
			SalaryPremium: 5000,
			DemandTrend:   "Stable",
			Courses: []types.CourseOption{
				{Name: "Getting Things Done (GTD)", Cost: 50, Duration: "2 weeks", ROI: 500},
				{Name: "Work Smarter, Not Harder", Cost: 0, Duration: "3 weeks", ROI: 400},
			},
		},
		{
			Name:          "Creativity",
			Description:   "Innovation, ideation, design thinking",
			SalaryPremium: 9000,
			DemandTrend:   "Growing",
			Courses: []types.CourseOption{
				{Name: "Creative Thinking (Coursera)", Cost: 0, Duration: "4 weeks", ROI: 350},
				{Name: "Design Sprint Masterclass", Cost: 300, Duration: "2 weeks", ROI: 280},
			},
		},
		{
			Name:          "Attention to Detail",
			Description:   "Accuracy, quality control, thoroughness",
			SalaryPremium: 7000,
			DemandTrend:   "Stable",
			Courses: []types.CourseOption{
				{Name: "Quality Assurance Fundamentals", Cost: 100, Duration: "4 weeks", ROI: 300},
				{Name: "Proofreading & Editing", Cost: 50, Duration: "2 weeks", ROI: 350},
			},
		},
	}
}

//nolint:funlen // static reference data
func defaultCareers() []types.CareerDefinition {
	return []types.CareerDefinition{
		// Technology
		{
			Name:     "Software Developer",
			Category: types.CategoryTechnology,
			RequiredSkills: map[string]int{
				"Programming": 95, "Problem Solving": 90, "Critical Thinking": 85,
				"Communication": 70, "Teamwork": 75, "Time Management": 80,
				"Creativity": 75, "Attention to Detail": 90,
			},
			MedianSalary: 110000,
			GrowthRate:   25,
			Education:    "Bachelor's Degree",
			EntryPaths:   []string{"CS Degree", "Bootcamp", "Self-taught + Portfolio"},
			TimeToEntry:  "6-24 months",
		},
		{
			Name:     "Data Scientist",
			Category: types.CategoryTechnology,
			RequiredSkills: map[string]int{
				"Programming": 85, "Problem Solving": 95, "Critical Thinking": 95,
				"Communication": 75, "Teamwork": 70, "Time Management": 75,
				"Creativity": 80, "Attention to Detail": 90,
			},
			MedianSalary: 120000,
			GrowthRate:   35,
			Education:    "Master's Degree",
			EntryPaths:   []string{"Statistics/Math Degree", "Data Analytics Certificate", "PhD"},
			TimeToEntry:  "12-36 months",
		},
		{
			Name:     "UX Designer",
			Category: types.CategoryTechnology,
			RequiredSkills: map[string]int{
				"Programming": 50, "Problem Solving": 85, "Critical Thinking": 80,
				"Communication": 90, "Teamwork": 85, "Time Management": 75,
				"Creativity": 95, "Attention to Detail": 85,
			},
			MedianSalary: 95000,
			GrowthRate:   15,
			Education:    "Bachelor's Degree",
			EntryPaths:   []string{"Design Degree", "UX Bootcamp", "Graphic Design + Portfolio"},
			TimeToEntry:  "6-18 months",
		},
		{
			Name:     "Cybersecurity Analyst",
			Category: types.CategoryTechnology,
			RequiredSkills: map[string]int{
				"Programming": 75, "Problem Solving": 90, "Critical Thinking": 95,
				"Communication": 70, "Teamwork": 75, "Time Management": 85,
				"Creativity": 65, "Attention to Detail": 95,
			},
			MedianSalary: 105000,
			GrowthRate:   32,
			Education:    "Bachelor's Degree + Certifications",
			EntryPaths:   []string{"IT Degree", "Security Certifications (CompTIA, CISSP)", "IT Experience + Certs"},
			TimeToEntry:  "12-24 months",
		},

		// Healthcare
		{
			Name:     "Registered Nurse",
			Category: types.CategoryHealthcare,
			RequiredSkills: map[string]int{
				"Programming": 15, "Problem Solving": 85, "Critical Thinking": 90,
				"Communication": 95, "Teamwork": 95, "Time Management": 90,
				"Creativity": 60, "Attention to Detail": 95,
			},
			MedianSalary: 77600,
			GrowthRate:   12,
			Education:    "Bachelor's Degree (BSN)",
			EntryPaths:   []string{"BSN Degree", "ADN + RN-to-BSN Bridge", "Accelerated BSN"},
			TimeToEntry:  "24-48 months",
		},
		{
			Name:     "Medical Assistant",
			Category: types.CategoryHealthcare,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 70, "Critical Thinking": 75,
				"Communication": 90, "Teamwork": 90, "Time Management": 85,
				"Creativity": 50, "Attention to Detail": 90,
			},
			MedianSalary: 38270,
			GrowthRate:   18,
			Education:    "Certificate/Associate's",
			EntryPaths:   []string{"MA Certificate", "Associate's Degree", "On-the-job Training"},
			TimeToEntry:  "6-12 months",
		},
		{
			Name:     "Physical Therapist",
			Category: types.CategoryHealthcare,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 90, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 80, "Time Management": 85,
				"Creativity": 75, "Attention to Detail": 90,
			},
			MedianSalary: 95620,
			GrowthRate:   17,
			Education:    "Doctoral Degree (DPT)",
			EntryPaths:   []string{"Pre-PT Undergrad + DPT", "Athletic Training + DPT"},
			TimeToEntry:  "72-84 months",
		},
		{
			Name:     "Healthcare Administrator",
			Category: types.CategoryHealthcare,
			RequiredSkills: map[string]int{
				"Programming": 30, "Problem Solving": 85, "Critical Thinking": 90,
				"Communication": 95, "Teamwork": 90, "Time Management": 95,
				"Creativity": 70, "Attention to Detail": 85,
			},
			MedianSalary: 104280,
			GrowthRate:   28,
			Education:    "Master's Degree (MHA/MBA)",
			EntryPaths:   []string{"Healthcare Experience + MBA", "MHA Degree", "Clinical + Management"},
			TimeToEntry:  "24-48 months",
		},

		// Business
		{
			Name:     "Project Manager",
			Category: types.CategoryBusiness,
			RequiredSkills: map[string]int{
				"Programming": 40, "Problem Solving": 90, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 95, "Time Management": 95,
				"Creativity": 75, "Attention to Detail": 85,
			},
			MedianSalary: 94500,
			GrowthRate:   7,
			Education:    "Bachelor's Degree + PMP",
			EntryPaths:   []string{"Any Degree + PMP Cert", "Experience + Agile Certs", "MBA"},
			TimeToEntry:  "12-36 months",
		},
		{
			Name:     "Marketing Manager",
			Category: types.CategoryBusiness,
			RequiredSkills: map[string]int{
				"Programming": 35, "Problem Solving": 80, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 85, "Time Management": 85,
				"Creativity": 95, "Attention to Detail": 80,
			},
			MedianSalary: 135030,
			GrowthRate:   10,
			Education:    "Bachelor's Degree",
			EntryPaths:   []string{"Marketing Degree", "Business Degree + Marketing Experience", "Digital Marketing Certs"},
			TimeToEntry:  "24-48 months",
		},
		{
			Name:     "Financial Analyst",
			Category: types.CategoryBusiness,
			RequiredSkills: map[string]int{
				"Programming": 60, "Problem Solving": 90, "Critical Thinking": 95,
				"Communication": 80, "Teamwork": 75, "Time Management": 85,
				"Creativity": 60, "Attention to Detail": 95,
			},
			MedianSalary: 95570,
			GrowthRate:   9,
			Education:    "Bachelor's Degree",
			EntryPaths:   []string{"Finance Degree", "Accounting + CFA", "Economics + Financial Modeling"},
			TimeToEntry:  "12-24 months",
		},
		{
			Name:     "Human Resources Manager",
			Category: types.CategoryBusiness,
			RequiredSkills: map[string]int{
				"Programming": 25, "Problem Solving": 85, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 95, "Time Management": 90,
				"Creativity": 70, "Attention to Detail": 85,
			},
			MedianSalary: 126230,
			GrowthRate:   7,
			Education:    "Bachelor's Degree",
			EntryPaths:   []string{"HR Degree", "Business + SHRM Cert", "Psychology + HR Experience"},
			TimeToEntry:  "24-48 months",
		},

		// Education
		{
			Name:     "High School Teacher",
			Category: types.CategoryEducation,
			RequiredSkills: map[string]int{
				"Programming": 25, "Problem Solving": 80, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 80, "Time Management": 90,
				"Creativity": 85, "Attention to Detail": 80,
			},
			MedianSalary: 62360,
			GrowthRate:   5,
			Education:    "Bachelor's Degree + Certification",
			EntryPaths:   []string{"Education Degree + License", "Subject Degree + Teaching Cert", "Alternative Certification"},
			TimeToEntry:  "12-48 months",
		},
		{
			Name:     "Instructional Designer",
			Category: types.CategoryEducation,
			RequiredSkills: map[string]int{
				"Programming": 50, "Problem Solving": 85, "Critical Thinking": 85,
				"Communication": 90, "Teamwork": 80, "Time Management": 85,
				"Creativity": 95, "Attention to Detail": 85,
			},
			MedianSalary: 74620,
			GrowthRate:   11,
			Education:    "Master's Degree",
			EntryPaths:   []string{"ID Master's", "Teaching Experience + ID Cert", "Ed Tech Degree"},
			TimeToEntry:  "12-24 months",
		},
		{
			Name:     "School Counselor",
			Category: types.CategoryEducation,
			RequiredSkills: map[string]int{
				"Programming": 15, "Problem Solving": 90, "Critical Thinking": 90,
				"Communication": 95, "Teamwork": 85, "Time Management": 85,
				"Creativity": 75, "Attention to Detail": 80,
			},
			MedianSalary: 60140,
			GrowthRate:   10,
			Education:    "Master's Degree",
			EntryPaths:   []string{"Counseling Master's + License", "Psychology + School Counseling Cert"},
			TimeToEntry:  "24-36 months",
		},
		{
			Name:     "University Professor",
			Category: types.CategoryEducation,
			RequiredSkills: map[string]int{
				"Programming": 45, "Problem Solving": 90, "Critical Thinking": 95,
				"Communication": 90, "Teamwork": 70, "Time Management": 80,
				"Creativity": 85, "Attention to Detail": 90,
			},
			MedianSalary: 80560,
			GrowthRate:   8,
			Education:    "Doctoral Degree",
			EntryPaths:   []string{"PhD + Postdoc", "Terminal Master's (some fields)", "Industry + PhD"},
			TimeToEntry:  "60-96 months",
		},

		// Community
		{
			Name:     "Social Worker",
			Category: types.CategoryCommunity,
			RequiredSkills: map[string]int{
				"Programming": 15, "Problem Solving": 90, "Critical Thinking": 90,
				"Communication": 95, "Teamwork": 90, "Time Management": 85,
				"Creativity": 75, "Attention to Detail": 85,
			},
			MedianSalary: 55350,
			GrowthRate:   9,
			Education:    "Bachelor's/Master's Degree",
			EntryPaths:   []string{"BSW", "MSW", "Related Degree + MSW"},
			TimeToEntry:  "24-48 months",
		},
		{
			Name:     "Community Health Worker",
			Category: types.CategoryCommunity,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 80, "Critical Thinking": 80,
				"Communication": 95, "Teamwork": 95, "Time Management": 85,
				"Creativity": 70, "Attention to Detail": 80,
			},
			MedianSalary: 46590,
			GrowthRate:   14,
			Education:    "High School/Certificate",
			EntryPaths:   []string{"CHW Certificate", "Public Health Training", "Community Experience"},
			TimeToEntry:  "3-12 months",
		},
		{
			Name:     "Nonprofit Program Manager",
			Category: types.CategoryCommunity,
			RequiredSkills: map[string]int{
				"Programming": 30, "Problem Solving": 90, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 95, "Time Management": 90,
				"Creativity": 85, "Attention to Detail": 85,
			},
			MedianSalary: 65000,
			GrowthRate:   12,
			Education:    "Bachelor's Degree",
			EntryPaths:   []string{"Nonprofit Experience", "MPA/MPP", "Business + Nonprofit Cert"},
			TimeToEntry:  "12-36 months",
		},
		{
			Name:     "Community Organizer",
			Category: types.CategoryCommunity,
			RequiredSkills: map[string]int{
				"Programming": 20, "Problem Solving": 85, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 95, "Time Management": 80,
				"Creativity": 90, "Attention to Detail": 75,
			},
			MedianSalary: 48000,
			GrowthRate:   10,
			Education:    "Bachelor's Degree",
			EntryPaths:   []string{"Political Science/Sociology Degree", "Grassroots Experience", "Nonprofit Path"},
			TimeToEntry:  "6-24 months",
		},

		// Mental Health
		{
			Name:     "Clinical Psychologist",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 20, "Problem Solving": 95, "Critical Thinking": 95,
				"Communication": 95, "Teamwork": 75, "Time Management": 85,
				"Creativity": 80, "Attention to Detail": 90,
			},
			MedianSalary: 85330,
			GrowthRate:   6,
			Education:    "Doctoral Degree (PhD/PsyD)",
			EntryPaths:   []string{"Psychology PhD", "PsyD Program", "Research + Clinical Training"},
			TimeToEntry:  "72-96 months",
		},
		{
			Name:     "Mental Health Counselor",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 90, "Critical Thinking": 90,
				"Communication": 95, "Teamwork": 85, "Time Management": 85,
				"Creativity": 75, "Attention to Detail": 85,
			},
			MedianSalary: 53710,
			GrowthRate:   18,
			Education:    "Master's Degree",
			EntryPaths:   []string{"Counseling Master's + Licensure", "Psychology BA + Counseling MS", "Social Work + Counseling"},
			TimeToEntry:  "24-36 months",
		},
		{
			Name:     "Marriage & Family Therapist",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 90, "Critical Thinking": 90,
				"Communication": 95, "Teamwork": 80, "Time Management": 85,
				"Creativity": 80, "Attention to Detail": 85,
			},
			MedianSalary: 58510,
			GrowthRate:   15,
			Education:    "Master's Degree",
			EntryPaths:   []string{"MFT Master's Program", "Psychology + MFT Specialization", "Social Work + Family Therapy"},
			TimeToEntry:  "24-36 months",
		},
		{
			Name:     "Psychiatrist",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 15, "Problem Solving": 95, "Critical Thinking": 95,
				"Communication": 90, "Teamwork": 80, "Time Management": 90,
				"Creativity": 70, "Attention to Detail": 95,
			},
			MedianSalary: 226880,
			GrowthRate:   7,
			Education:    "Medical Degree (MD/DO)",
			EntryPaths:   []string{"Pre-Med + Medical School + Psychiatry Residency"},
			TimeToEntry:  "144-156 months",
		},
		{
			Name:     "School Psychologist",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 20, "Problem Solving": 90, "Critical Thinking": 90,
				"Communication": 95, "Teamwork": 90, "Time Management": 85,
				"Creativity": 80, "Attention to Detail": 85,
			},
			MedianSalary: 81500,
			GrowthRate:   10,
			Education:    "Specialist/Doctoral Degree",
			EntryPaths:   []string{"School Psychology EdS", "Psychology PhD + School Cert", "Education + Psychology"},
			TimeToEntry:  "36-72 months",
		},
		{
			Name:     "Substance Abuse Counselor",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 85, "Critical Thinking": 85,
				"Communication": 95, "Teamwork": 90, "Time Management": 85,
				"Creativity": 70, "Attention to Detail": 80,
			},
			MedianSalary: 49710,
			GrowthRate:   18,
			Education:    "Bachelor's/Master's Degree",
			EntryPaths:   []string{"CADC Certification", "Counseling Degree + Substance Specialty", "Social Work + CASAC"},
			TimeToEntry:  "12-36 months",
		},
		{
			Name:     "Psychiatric Technician",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 75, "Critical Thinking": 75,
				"Communication": 90, "Teamwork": 95, "Time Management": 85,
				"Creativity": 60, "Attention to Detail": 90,
			},
			MedianSalary: 37380,
			GrowthRate:   9,
			Education:    "Certificate/Associate's",
			EntryPaths:   []string{"Psych Tech Certificate", "Nursing Assistant + Mental Health Training", "Associate's in Mental Health"},
			TimeToEntry:  "6-18 months",
		},
		{
			Name:     "Art/Music Therapist",
			Category: types.CategoryMentalHealth,
			RequiredSkills: map[string]int{
				"Programming": 10, "Problem Solving": 85, "Critical Thinking": 80,
				"Communication": 90, "Teamwork": 85, "Time Management": 80,
				"Creativity": 95, "Attention to Detail": 80,
			},
			MedianSalary: 52800,
			GrowthRate:   12,
			Education:    "Master's Degree",
			EntryPaths:   []string{"Art Therapy Master's", "Music Therapy Master's", "Psychology + Creative Arts Therapy"},
			TimeToEntry:  "24-36 months",
		},
	}
}
