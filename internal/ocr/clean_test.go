package ocr

import "testing"

func TestLocalClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"arabic stripped",
			"define atom الذرة here",
			"define atom  here",
		},
		{
			"watermark line dropped",
			"keep this line\nvisit WWW.EXAMPLE.PK for more\nand this line",
			"keep this line\nand this line",
		},
		{
			"freeilm dropped case-insensitive",
			"real question\ndownloaded from freeilm portal",
			"real question",
		},
		{
			"double at line dropped",
			"normal line\ncontact me@here and you@there\nanother line",
			"normal line\nanother line",
		},
		{
			"single at kept",
			"email admin@academy for queries",
			"email admin@academy for queries",
		},
		{
			"leading number comma",
			"1, What is an atom?",
			"1. What is an atom?",
		},
		{
			"decimal comma",
			"density is 2,5 g/mL",
			"density is 2.5 g/mL",
		},
		{
			"ofthe split",
			"mass ofthe electron",
			"mass of the electron",
		},
		{
			"grams spacing",
			"weigh 10grams of salt and 5gram of sugar",
			"weigh 10 grams of salt and 5 grams of sugar",
		},
		{
			"bracket marks annotation",
			"Explain fully. [ 5 ]",
			"Explain fully. [5 marks]",
		},
		{
			"tabs collapsed",
			"col1\t\tcol2",
			"col1  col2",
		},
		{
			"short lines dropped",
			"a\nreal content line\n?",
			"real content line",
		},
		{
			"blank lines deduplicated",
			"first\n\n\n\nsecond",
			"first\n\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalClean(tt.input)
			if got != tt.want {
				t.Errorf("LocalClean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocalCleanDeterministic(t *testing.T) {
	input := "Q1, the mass ofthe sample is 2,5grams سلام\nspam@one spam@two\n[3]"
	first := LocalClean(input)
	for i := 0; i < 5; i++ {
		if got := LocalClean(input); got != first {
			t.Fatalf("run %d differs: %q vs %q", i, got, first)
		}
	}
	if first != LocalClean(first) {
		t.Error("cleaning cleaned output changed it again")
	}
}
