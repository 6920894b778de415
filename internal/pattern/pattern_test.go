package pattern

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	subjects := c.List()
	if len(subjects) != 5 {
		t.Fatalf("expected 5 subjects, got %d", len(subjects))
	}

	wantOrder := []string{"chemistry", "biology", "physics", "english", "maths"}
	for i, id := range wantOrder {
		if subjects[i].ID != id {
			t.Errorf("subject %d: expected %q, got %q", i, id, subjects[i].ID)
		}
	}
}

func TestGet(t *testing.T) {
	c := Default()

	chem, ok := c.Get("chemistry")
	if !ok {
		t.Fatal("chemistry pattern not found")
	}
	if chem.Name != "Chemistry" {
		t.Errorf("expected name Chemistry, got %q", chem.Name)
	}
	if chem.TotalMarks != 60 {
		t.Errorf("expected 60 total marks, got %d", chem.TotalMarks)
	}
	if len(chem.Sections) != 7 {
		t.Errorf("expected 7 sections, got %d", len(chem.Sections))
	}
	if chem.Sections[0].Type != TypeMCQ {
		t.Errorf("expected first section MCQ, got %q", chem.Sections[0].Type)
	}

	if _, ok := c.Get("astrology"); ok {
		t.Error("expected lookup miss for unknown subject")
	}
}

func TestSectionShapes(t *testing.T) {
	c := Default()

	eng, _ := c.Get("english")
	if eng.Sections[0].Type != TypeMCQMixed {
		t.Errorf("expected MCQ_MIXED, got %q", eng.Sections[0].Type)
	}
	if len(eng.Sections[0].SubSections) != 4 {
		t.Errorf("expected 4 sub-sections, got %d", len(eng.Sections[0].SubSections))
	}

	chem, _ := c.Get("chemistry")
	long := chem.Sections[4]
	if long.Type != TypeLong {
		t.Fatalf("expected LONG section, got %q", long.Type)
	}
	if len(long.SubParts) != 2 || long.SubParts[0].Part != "a" || long.SubParts[1].Marks != 4 {
		t.Errorf("unexpected sub-parts: %+v", long.SubParts)
	}
}

func TestNewCatalogSkipsDuplicates(t *testing.T) {
	c := NewCatalog(
		Subject{ID: "x", Name: "First"},
		Subject{ID: "x", Name: "Second"},
	)
	if len(c.List()) != 1 {
		t.Fatalf("expected 1 subject, got %d", len(c.List()))
	}
	s, _ := c.Get("x")
	if s.Name != "First" {
		t.Errorf("expected first registration to win, got %q", s.Name)
	}
}
