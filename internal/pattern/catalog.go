package pattern

// Default returns the built-in paper patterns for the five supported
// subjects. Section totals are advisory; nothing at runtime reconciles them
// against the pattern total.
func Default() *Catalog {
	return NewCatalog(
		Subject{
			ID:          "chemistry",
			Name:        "Chemistry",
			TotalMarks:  60,
			TimeAllowed: "2 Hours 30 Minutes",
			Sections: []Section{
				{Name: "OBJECTIVE TYPE", Type: TypeMCQ, Label: "Q#1",
					Instructions: "Choose the correct answer. Each MCQ carries 1 mark.",
					NumQuestions: 12, MarksEach: 1, TotalMarks: 12},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#2",
					Instructions: "Attempt any FIVE (5) short questions out of 8. Each carries 2 marks.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#3",
					Instructions: "Attempt any FIVE (5) short questions out of 8. Each carries 2 marks.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#4",
					Instructions: "Attempt any FIVE (5) short questions out of 8. Each carries 2 marks.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#5",
					Instructions: "Note: Attempt any TWO (2) questions from Q#5, Q#6, Q#7.",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 5, Kind: "descriptive"}, {Part: "b", Marks: 4, Kind: "descriptive"}},
					AttemptRule: "Attempt any 2 out of 3 (Q#5, Q#6, Q#7)"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#6",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 5, Kind: "descriptive"}, {Part: "b", Marks: 4, Kind: "descriptive"}},
					AttemptRule: "Attempt any 2 out of 3 (Q#5, Q#6, Q#7)"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#7",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 5, Kind: "descriptive"}, {Part: "b", Marks: 4, Kind: "descriptive"}},
					AttemptRule: "Attempt any 2 out of 3 (Q#5, Q#6, Q#7)"},
			},
		},
		Subject{
			ID:          "biology",
			Name:        "Biology",
			TotalMarks:  60,
			TimeAllowed: "2 Hours 30 Minutes",
			Sections: []Section{
				{Name: "OBJECTIVE TYPE", Type: TypeMCQ, Label: "Q#1",
					Instructions: "Choose the correct answer.",
					NumQuestions: 12, MarksEach: 1, TotalMarks: 12},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#2",
					Instructions: "Attempt any 5 out of 8.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#3",
					Instructions: "Attempt any 5 out of 8.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#4",
					Instructions: "Attempt any 5 out of 8.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#5",
					Instructions: "Attempt any 2 out of 3.",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 5}, {Part: "b", Marks: 4}},
					AttemptRule: "Attempt any 2 out of 3"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#6",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 5}, {Part: "b", Marks: 4}},
					AttemptRule: "Attempt any 2 out of 3"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#7",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 5}, {Part: "b", Marks: 4}},
					AttemptRule: "Attempt any 2 out of 3"},
			},
		},
		Subject{
			ID:          "physics",
			Name:        "Physics",
			TotalMarks:  60,
			TimeAllowed: "2 Hours 30 Minutes",
			Sections: []Section{
				{Name: "OBJECTIVE TYPE", Type: TypeMCQ, Label: "Q#1",
					Instructions: "Choose the correct answer.",
					NumQuestions: 12, MarksEach: 1, TotalMarks: 12},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#2",
					Instructions: "Attempt any 5 out of 8.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#3",
					Instructions: "Attempt any 5 out of 8.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-I)", Type: TypeShort, Label: "Q#4",
					Instructions: "Attempt any 5 out of 8.",
					NumQuestions: 8, MarksEach: 2, TotalMarks: 10, AttemptRule: "Attempt any 5 out of 8"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#5",
					Instructions: "Attempt any 2 out of 3.",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 4, Kind: "descriptive"}, {Part: "b", Marks: 5, Kind: "numerical"}},
					AttemptRule: "Attempt any 2 out of 3"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#6",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 4}, {Part: "b", Marks: 5, Kind: "numerical"}},
					AttemptRule: "Attempt any 2 out of 3"},
				{Name: "SUBJECTIVE TYPE (Part-II)", Type: TypeLong, Label: "Q#7",
					NumQuestions: 1, TotalMarks: 9,
					SubParts:    []SubPart{{Part: "a", Marks: 4}, {Part: "b", Marks: 5, Kind: "numerical"}},
					AttemptRule: "Attempt any 2 out of 3"},
			},
		},
		Subject{
			ID:          "english",
			Name:        "English",
			TotalMarks:  75,
			TimeAllowed: "2 Hours 30 Minutes",
			Sections: []Section{
				{Name: "OBJECTIVE PAPER", Type: TypeMCQMixed, Label: "Q#1",
					Instructions: "Choose the correct option.",
					TotalMarks:   19,
					SubSections: []SubSection{
						{Name: "Correct Form of Verb", NumQuestions: 5},
						{Name: "Spellings", NumQuestions: 4},
						{Name: "Meanings", NumQuestions: 5},
						{Name: "Grammar", NumQuestions: 5},
					}},
				{Name: "SUBJECTIVE PAPER", Type: TypeMixed, Label: "Q#2-Q#9",
					Instructions: "Answer as directed.",
					TotalMarks:   56},
			},
		},
		Subject{
			ID:          "maths",
			Name:        "Mathematics",
			TotalMarks:  75,
			TimeAllowed: "2 Hours 30 Minutes",
			Sections: []Section{
				{Name: "OBJECTIVE (MCQs)", Type: TypeMCQ, Label: "Q#1",
					Instructions: "Choose the correct answer.",
					NumQuestions: 15, MarksEach: 1, TotalMarks: 15},
				{Name: "SUBJECTIVE (Short)", Type: TypeShort, Label: "Q#2",
					Instructions: "Solve any 6 out of 9.",
					NumQuestions: 9, MarksEach: 2, TotalMarks: 12, AttemptRule: "Solve any 6 out of 9"},
				{Name: "SUBJECTIVE (Short)", Type: TypeShort, Label: "Q#3",
					Instructions: "Solve any 6 out of 9.",
					NumQuestions: 9, MarksEach: 2, TotalMarks: 12, AttemptRule: "Solve any 6 out of 9"},
				{Name: "SUBJECTIVE (Short)", Type: TypeShort, Label: "Q#4",
					Instructions: "Solve any 6 out of 9.",
					NumQuestions: 9, MarksEach: 2, TotalMarks: 12, AttemptRule: "Solve any 6 out of 9"},
				{Name: "SUBJECTIVE (Long)", Type: TypeLong, Label: "Q#5-Q#9",
					Instructions: "Attempt any 3 out of 5.",
					NumQuestions: 5, TotalMarks: 24,
					SubParts:    []SubPart{{Part: "a", Marks: 4}, {Part: "b", Marks: 4}},
					AttemptRule: "Attempt any 3 out of 5"},
			},
		},
	)
}
