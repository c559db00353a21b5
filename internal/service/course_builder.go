package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
)

// BuilderStep is the course wizard position. Steps are linear and advanced
// only by explicit intents; validation gating is the view layer's job.
type BuilderStep int

const (
	StepDetails BuilderStep = iota
	StepSections
	StepPublish
)

// WriteState makes the commit-on-success policy observable: section and
// subsection writes go Pending while the round trip is in flight and commit
// locally only once the server confirms.
type WriteState string

const (
	WriteIdle      WriteState = "idle"
	WritePending   WriteState = "pending"
	WriteCommitted WriteState = "committed"
)

// CourseBuilder is the composite authoring state for one course: wizard step,
// active course id, the section list, and a side-channel selection for
// subsection creation. Section ids are server-assigned, so there is no
// optimistic insert; local state mutates only after the server confirms.
type CourseBuilder struct {
	mu   sync.Mutex
	repo repository.CourseRepository

	step              BuilderStep
	editMode          bool
	courseID          string
	selectedSectionID string

	sections []models.Section
	index    map[string]int

	writeState WriteState
	err        *api.APIError
}

func NewCourseBuilder(repo repository.CourseRepository) *CourseBuilder {
	return &CourseBuilder{
		repo:       repo,
		sections:   []models.Section{},
		index:      map[string]int{},
		writeState: WriteIdle,
	}
}

func (b *CourseBuilder) Step() BuilderStep {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.step
}

func (b *CourseBuilder) NextStep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.step < StepPublish {
		b.step++
	}
}

func (b *CourseBuilder) PrevStep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.step > StepDetails {
		b.step--
	}
}

func (b *CourseBuilder) SetEditMode(edit bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editMode = edit
}

func (b *CourseBuilder) EditMode() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editMode
}

func (b *CourseBuilder) CourseID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.courseID
}

// SelectSection records which section owns the next subsection write. The
// selection travels outside the subsection payload itself.
func (b *CourseBuilder) SelectSection(sectionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selectedSectionID = sectionID
}

func (b *CourseBuilder) SelectedSection() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedSectionID
}

func (b *CourseBuilder) WriteState() WriteState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeState
}

func (b *CourseBuilder) Err() *api.APIError {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// CreateCourse submits the details step and seeds the builder with the
// server-assigned course.
func (b *CourseBuilder) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, newValidationError("course name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, newValidationError("course description is required")
	}

	course, err := b.repo.CreateCourse(ctx, req)
	if err != nil {
		b.setErr(err)
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.courseID = course.ID
	b.replaceSections(course.Content)
	b.err = nil
	return course, nil
}

// LoadCourse pulls an existing course into the builder and switches it to
// edit mode.
func (b *CourseBuilder) LoadCourse(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := b.repo.GetCourseDetails(ctx, courseID)
	if err != nil {
		b.setErr(err)
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.courseID = course.ID
	b.editMode = true
	b.replaceSections(course.Content)
	b.err = nil
	return course, nil
}

// SetSection reconciles one section into the local list. In edit mode an
// incoming section whose id matches an existing entry replaces it in place;
// in every other case it appends with a freshly assigned ordering key. The
// dual path lets the same reducer serve both the create and edit flows.
func (b *CourseBuilder) SetSection(section models.Section) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.editMode {
		if pos, ok := b.index[section.ID]; ok {
			if section.Value == "" {
				section.Value = b.sections[pos].Value
			}
			b.sections[pos] = section
			return
		}
	}

	if section.Value == "" {
		section.Value = uuid.NewString()
	}
	b.sections = append(b.sections, section)
	b.index[section.ID] = len(b.sections) - 1
}

// AddSection is a two-phase write: the request goes out first and the local
// list grows only on success. Failure leaves local state untouched and keeps
// the server's message verbatim.
func (b *CourseBuilder) AddSection(ctx context.Context, name string) (*models.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("section name is required")
	}

	b.mu.Lock()
	courseID := b.courseID
	b.writeState = WritePending
	b.mu.Unlock()

	section, err := b.repo.AddSection(ctx, models.AddSectionRequest{SectionName: name, CourseID: courseID})
	if err != nil {
		b.failWrite(err)
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	sec := *section
	sec.Value = uuid.NewString()
	if sec.SubSection == nil {
		sec.SubSection = []models.Subsection{}
	}
	b.sections = append(b.sections, sec)
	b.index[sec.ID] = len(b.sections) - 1
	b.writeState = WriteCommitted
	b.err = nil
	return &sec, nil
}

// UpdateSection renames a section in place. Ordering is preserved; only the
// matched entry changes.
func (b *CourseBuilder) UpdateSection(ctx context.Context, sectionID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return newValidationError("section name is required")
	}

	b.mu.Lock()
	courseID := b.courseID
	b.writeState = WritePending
	b.mu.Unlock()

	req := models.UpdateSectionRequest{SectionName: name, SectionID: sectionID, CourseID: courseID}
	if _, err := b.repo.UpdateSection(ctx, req); err != nil {
		b.failWrite(err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pos, ok := b.index[sectionID]; ok {
		b.sections[pos].Name = name
	}
	b.writeState = WriteCommitted
	b.err = nil
	return nil
}

func (b *CourseBuilder) RemoveSection(ctx context.Context, sectionID string) error {
	b.mu.Lock()
	courseID := b.courseID
	b.writeState = WritePending
	b.mu.Unlock()

	req := models.DeleteSectionRequest{SectionID: sectionID, CourseID: courseID}
	if err := b.repo.DeleteSection(ctx, req); err != nil {
		b.failWrite(err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pos, ok := b.index[sectionID]; ok {
		b.sections = append(b.sections[:pos], b.sections[pos+1:]...)
		b.rebuildIndex()
	}
	if b.selectedSectionID == sectionID {
		b.selectedSectionID = ""
	}
	b.writeState = WriteCommitted
	b.err = nil
	return nil
}

// AddSubSection creates a subsection under the owning section named in the
// request. If the owner is unknown locally when the response lands, the local
// commit is a silent no-op; this tolerates out-of-order section fetches.
func (b *CourseBuilder) AddSubSection(ctx context.Context, req models.AddSubSectionRequest) (*models.Subsection, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, newValidationError("lecture title is required")
	}
	if strings.TrimSpace(req.VideoURL) == "" {
		return nil, newValidationError("lecture video is required")
	}

	b.mu.Lock()
	b.writeState = WritePending
	b.mu.Unlock()

	sub, err := b.repo.AddSubSection(ctx, req)
	if err != nil {
		b.failWrite(err)
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pos, ok := b.index[req.SectionID]; ok {
		b.sections[pos].SubSection = append(b.sections[pos].SubSection, *sub)
	}
	b.writeState = WriteCommitted
	b.err = nil
	return sub, nil
}

func (b *CourseBuilder) UpdateSubSection(ctx context.Context, req models.UpdateSubSectionRequest) error {
	b.mu.Lock()
	b.writeState = WritePending
	b.mu.Unlock()

	sub, err := b.repo.UpdateSubSection(ctx, req)
	if err != nil {
		b.failWrite(err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pos, ok := b.index[req.SectionID]; ok {
		subs := b.sections[pos].SubSection
		for i := range subs {
			if subs[i].ID == req.SubSectionID {
				subs[i] = *sub
				break
			}
		}
	}
	b.writeState = WriteCommitted
	b.err = nil
	return nil
}

func (b *CourseBuilder) RemoveSubSection(ctx context.Context, req models.DeleteSubSectionRequest) error {
	b.mu.Lock()
	b.writeState = WritePending
	b.mu.Unlock()

	if err := b.repo.DeleteSubSection(ctx, req); err != nil {
		b.failWrite(err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pos, ok := b.index[req.SectionID]; ok {
		subs := b.sections[pos].SubSection
		for i := range subs {
			if subs[i].ID == req.SubSectionID {
				b.sections[pos].SubSection = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
	b.writeState = WriteCommitted
	b.err = nil
	return nil
}

// Sections returns a deep copy; callers must never see the builder's own
// nested slices.
func (b *CourseBuilder) Sections() []models.Section {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Section, len(b.sections))
	for i, section := range b.sections {
		subs := make([]models.Subsection, len(section.SubSection))
		copy(subs, section.SubSection)
		section.SubSection = subs
		out[i] = section
	}
	return out
}

func (b *CourseBuilder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.step = StepDetails
	b.editMode = false
	b.courseID = ""
	b.selectedSectionID = ""
	b.sections = []models.Section{}
	b.index = map[string]int{}
	b.writeState = WriteIdle
	b.err = nil
}

func (b *CourseBuilder) setErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = api.AsAPIError(err)
}

func (b *CourseBuilder) failWrite(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeState = WriteIdle
	b.err = api.AsAPIError(err)
}

// rebuildIndex must run under b.mu after any structural change to the
// section list.
func (b *CourseBuilder) rebuildIndex() {
	b.index = make(map[string]int, len(b.sections))
	for i, section := range b.sections {
		b.index[section.ID] = i
	}
}

func (b *CourseBuilder) replaceSections(sections []models.Section) {
	if sections == nil {
		sections = []models.Section{}
	}
	for i := range sections {
		if sections[i].Value == "" {
			sections[i].Value = uuid.NewString()
		}
		if sections[i].SubSection == nil {
			sections[i].SubSection = []models.Subsection{}
		}
	}
	b.sections = sections
	b.rebuildIndex()
}
