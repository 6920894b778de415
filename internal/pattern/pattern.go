// Package pattern holds the per-subject paper patterns: how many sections an
// exam has, how questions and marks are distributed, and which attempt rules
// apply. Patterns are pure data, loaded once at startup and passed to the
// components that need them.
package pattern

// SectionType tags how a section's questions are shaped and rendered.
type SectionType string

const (
	TypeMCQ      SectionType = "MCQ"
	TypeMCQMixed SectionType = "MCQ_MIXED"
	TypeShort    SectionType = "SHORT"
	TypeLong     SectionType = "LONG"
	TypeMixed    SectionType = "MIXED"
)

// SubPart describes one lettered part of a multi-part long question.
type SubPart struct {
	Part  string `json:"part"`
	Marks int    `json:"marks"`
	Kind  string `json:"type,omitempty"`
}

// SubSection names a sub-group inside a mixed objective section.
type SubSection struct {
	Name         string `json:"name"`
	NumQuestions int    `json:"num_questions"`
}

// Section specifies one graded block of the paper.
type Section struct {
	Name         string       `json:"section_name"`
	Label        string       `json:"question_label"`
	Type         SectionType  `json:"section_type"`
	Instructions string       `json:"instructions"`
	AttemptRule  string       `json:"attempt_rule,omitempty"`
	NumQuestions int          `json:"num_questions,omitempty"`
	MarksEach    int          `json:"marks_each,omitempty"`
	TotalMarks   int          `json:"total_marks"`
	SubParts     []SubPart    `json:"sub_parts,omitempty"`
	SubSections  []SubSection `json:"sub_sections,omitempty"`
}

// Subject is the full paper pattern for one subject.
type Subject struct {
	ID          string    `json:"id"`
	Name        string    `json:"subject"`
	TotalMarks  int       `json:"total_marks"`
	TimeAllowed string    `json:"time_allowed"`
	Sections    []Section `json:"sections"`
}

// Catalog is an immutable registry of subject patterns, keyed by subject id.
type Catalog struct {
	subjects map[string]Subject
	order    []string
}

// NewCatalog builds a catalog from the given subjects, preserving order.
func NewCatalog(subjects ...Subject) *Catalog {
	c := &Catalog{subjects: make(map[string]Subject, len(subjects))}
	for _, s := range subjects {
		if _, dup := c.subjects[s.ID]; dup {
			continue
		}
		c.subjects[s.ID] = s
		c.order = append(c.order, s.ID)
	}
	return c
}

// Get returns the pattern for a subject id.
func (c *Catalog) Get(id string) (Subject, bool) {
	s, ok := c.subjects[id]
	return s, ok
}

// List returns all subjects in registration order.
func (c *Catalog) List() []Subject {
	out := make([]Subject, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.subjects[id])
	}
	return out
}
