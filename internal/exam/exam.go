// Package exam defines the renderable exam document and the two stages that
// produce it from a generative model's raw output: locating a JSON object in
// arbitrary text, and repairing the parsed value into a document that always
// satisfies the schema.
package exam

// SubPart is one lettered component of a multi-part long question.
type SubPart struct {
	Part  string `json:"part"`
	Text  string `json:"text"`
	Marks int    `json:"marks"`
}

// Question is a single question within a section. Options and CorrectAnswer
// are populated for MCQ-style sections; SubParts for multi-part long
// questions.
type Question struct {
	Number        int               `json:"question_number"`
	Text          string            `json:"question_text"`
	Marks         int               `json:"marks"`
	Options       map[string]string `json:"options,omitempty"`
	CorrectAnswer string            `json:"correct_answer,omitempty"`
	SubParts      []SubPart         `json:"sub_parts,omitempty"`
}

// Section is one graded block of the exam.
type Section struct {
	Name         string     `json:"section_name"`
	Label        string     `json:"question_label"`
	Type         string     `json:"section_type"`
	Instructions string     `json:"instructions"`
	AttemptRule  *string    `json:"attempt_rule"`
	Questions    []Question `json:"questions"`
}

// Exam is the fully validated, renderable exam document.
type Exam struct {
	Title       string    `json:"exam_title"`
	Subject     string    `json:"subject"`
	TotalMarks  int       `json:"total_marks"`
	TimeAllowed string    `json:"time_allowed"`
	Sections    []Section `json:"sections"`
}
