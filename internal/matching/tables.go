package matching

// SynonymGroup is one equivalence class of skill labels across languages and
// spellings. A user token that hits the group (exact member, or the token
// contains the key) pulls the whole group into the expanded skill set.
type SynonymGroup struct {
	Key   string
	Terms []string
}

// CareerCourses maps a career-intent keyword to the course names suggested for
// it. Order matters: the first key contained in the intent wins.
type CareerCourses struct {
	Key     string
	Courses []string
}

func DefaultSynonymGroups() []SynonymGroup {
	return []SynonymGroup{
		{Key: "cooking", Terms: []string{"cooking", "catering", "chef", "सिलाई", "சமையல்", "food"}},
		{Key: "sewing", Terms: []string{"sewing", "tailoring", "embroidery", "सिलाई", "தையல்", "stitching"}},
		{Key: "teaching", Terms: []string{"teaching", "education", "mentor", "शिक्षण", "ஆசிரியர்"}},
		{Key: "computer", Terms: []string{"computer", "digital", "typing", "कंप्यूटर", "கணினி"}},
		{Key: "farming", Terms: []string{"farming", "agriculture", "organic", "खेती", "விவசாயம்"}},
	}
}

func DefaultCareerCourses() []CareerCourses {
	return []CareerCourses{
		{Key: "tailoring", Courses: []string{"Advanced Embroidery"}},
		{Key: "sewing", Courses: []string{"Advanced Embroidery"}},
		{Key: "healthcare", Courses: []string{"Basic Healthcare Training"}},
		{Key: "nurse", Courses: []string{"Basic Healthcare Training"}},
		{Key: "computer", Courses: []string{"Computer Literacy 101", "Typing Masterclass"}},
		{Key: "data entry", Courses: []string{"Typing Masterclass", "Computer Literacy 101"}},
		{Key: "farming", Courses: []string{"Organic Farming Basics"}},
		{Key: "agriculture", Courses: []string{"Organic Farming Basics"}},
		{Key: "teaching", Courses: []string{"Child Development"}},
		{Key: "solar", Courses: []string{"Solar Panel Installation"}},
	}
}
