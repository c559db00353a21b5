package service

import (
	"context"
	"testing"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
)

func TestCourseBuilderStepClamping(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})

	b.PrevStep()
	if b.Step() != StepDetails {
		t.Fatalf("PrevStep at the first step should stay at Details, got %d", b.Step())
	}

	b.NextStep()
	b.NextStep()
	b.NextStep()
	if b.Step() != StepPublish {
		t.Fatalf("NextStep past the last step should stay at Publish, got %d", b.Step())
	}
}

func TestAddSectionCommitsOnSuccess(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})

	section, err := b.AddSection(context.Background(), "Introduction")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if section.Value == "" {
		t.Fatalf("expected a freshly assigned ordering key")
	}
	if b.WriteState() != WriteCommitted {
		t.Fatalf("expected write state committed, got %s", b.WriteState())
	}

	sections := b.Sections()
	if len(sections) != 1 || sections[0].Name != "Introduction" {
		t.Fatalf("expected one section named Introduction, got %+v", sections)
	}
}

func TestAddSectionFailureLeavesLocalStateUntouched(t *testing.T) {
	repo := &mockCourseRepo{err: api.NewServerError(409, "section name already taken")}
	b := NewCourseBuilder(repo)

	_, err := b.AddSection(context.Background(), "Introduction")
	if err == nil {
		t.Fatalf("expected error from failed write")
	}
	if len(b.Sections()) != 0 {
		t.Fatalf("failed write must not mutate the section list")
	}
	if b.WriteState() != WriteIdle {
		t.Fatalf("expected write state idle after failure, got %s", b.WriteState())
	}
	if b.Err() == nil || b.Err().Message != "section name already taken" {
		t.Fatalf("expected server message verbatim, got %+v", b.Err())
	}
}

func TestUpdateSectionPreservesOrdering(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})
	ctx := context.Background()

	secA, _ := b.AddSection(ctx, "A")
	secB, _ := b.AddSection(ctx, "B")
	_, _ = b.AddSection(ctx, "C")

	if err := b.UpdateSection(ctx, secA.ID, "A updated"); err != nil {
		t.Fatalf("update A: %v", err)
	}
	if err := b.UpdateSection(ctx, secB.ID, "B updated"); err != nil {
		t.Fatalf("update B: %v", err)
	}

	sections := b.Sections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	names := []string{sections[0].Name, sections[1].Name, sections[2].Name}
	if names[0] != "A updated" || names[1] != "B updated" || names[2] != "C" {
		t.Fatalf("update reordered sections: %v", names)
	}
}

func TestAddSubSectionToUnknownSectionIsSilentNoOp(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})
	ctx := context.Background()

	section, _ := b.AddSection(ctx, "Basics")

	req := models.AddSubSectionRequest{
		Title:     "Orphan lecture",
		VideoURL:  "https://videos.example.com/v1",
		SectionID: "no-such-section",
	}
	if _, err := b.AddSubSection(ctx, req); err != nil {
		t.Fatalf("unknown owner must not error, got %v", err)
	}

	sections := b.Sections()
	if len(sections) != 1 || sections[0].ID != section.ID {
		t.Fatalf("no new section may appear, got %+v", sections)
	}
	if len(sections[0].SubSection) != 0 {
		t.Fatalf("subsection must not land in an unrelated section")
	}
}

func TestAddSubSectionCommitsIntoOwningSection(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})
	ctx := context.Background()

	section, _ := b.AddSection(ctx, "Basics")

	req := models.AddSubSectionRequest{
		Title:     "Lecture 1",
		VideoURL:  "https://videos.example.com/v1",
		SectionID: section.ID,
	}
	sub, err := b.AddSubSection(ctx, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	sections := b.Sections()
	if len(sections[0].SubSection) != 1 || sections[0].SubSection[0].ID != sub.ID {
		t.Fatalf("subsection not committed into owning section: %+v", sections[0])
	}
}

func TestRemoveSubSectionRemovesOnlyMatch(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})
	ctx := context.Background()

	section, _ := b.AddSection(ctx, "Basics")
	first, _ := b.AddSubSection(ctx, models.AddSubSectionRequest{Title: "L1", VideoURL: "u1", SectionID: section.ID})
	second, _ := b.AddSubSection(ctx, models.AddSubSectionRequest{Title: "L2", VideoURL: "u2", SectionID: section.ID})

	err := b.RemoveSubSection(ctx, models.DeleteSubSectionRequest{SubSectionID: first.ID, SectionID: section.ID})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	subs := b.Sections()[0].SubSection
	if len(subs) != 1 || subs[0].ID != second.ID {
		t.Fatalf("expected only the second subsection to remain, got %+v", subs)
	}
}

func TestSetSectionEditModeReplacesInPlace(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})
	b.SetEditMode(true)

	b.SetSection(models.Section{ID: "s1", Name: "Original"})
	b.SetSection(models.Section{ID: "s2", Name: "Second"})
	b.SetSection(models.Section{ID: "s1", Name: "Renamed"})

	sections := b.Sections()
	if len(sections) != 2 {
		t.Fatalf("matching id must replace, not append: %d sections", len(sections))
	}
	if sections[0].Name != "Renamed" {
		t.Fatalf("expected in-place replacement, got %+v", sections[0])
	}
	if sections[0].Value == "" {
		t.Fatalf("replacement must keep an ordering key")
	}
}

func TestSetSectionCreateModeAlwaysAppends(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})

	b.SetSection(models.Section{ID: "s1", Name: "First"})
	b.SetSection(models.Section{ID: "s1", Name: "Again"})

	sections := b.Sections()
	if len(sections) != 2 {
		t.Fatalf("create mode must always append, got %d sections", len(sections))
	}
	if sections[0].Value == sections[1].Value {
		t.Fatalf("each append must get a fresh ordering key")
	}
}

func TestRemoveSectionClearsSelection(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})
	ctx := context.Background()

	section, _ := b.AddSection(ctx, "Basics")
	b.SelectSection(section.ID)

	if err := b.RemoveSection(ctx, section.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if b.SelectedSection() != "" {
		t.Fatalf("selection must not dangle after section removal")
	}
	if len(b.Sections()) != 0 {
		t.Fatalf("section not removed")
	}
}

func TestSectionsReturnsCopies(t *testing.T) {
	b := NewCourseBuilder(&mockCourseRepo{})
	ctx := context.Background()

	section, _ := b.AddSection(ctx, "Basics")
	_, _ = b.AddSubSection(ctx, models.AddSubSectionRequest{Title: "L1", VideoURL: "u1", SectionID: section.ID})

	snapshot := b.Sections()
	snapshot[0].Name = "mutated"
	snapshot[0].SubSection[0].Title = "mutated"

	fresh := b.Sections()
	if fresh[0].Name != "Basics" || fresh[0].SubSection[0].Title != "L1" {
		t.Fatalf("Sections must return copies, internal state was mutated: %+v", fresh[0])
	}
}
