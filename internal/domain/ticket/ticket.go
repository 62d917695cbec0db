// Package ticket holds the maintenance ticket aggregate: the lifecycle state
// machine, the append-only note log, the assignment resolver and the access
// gate consulted before every mutation.
package ticket

import (
	"fmt"
	"time"

	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/biztime"
)

// MaterialUsage records one consumed inventory line on a ticket. Items are
// matched against the inventory ledger by exact name.
type MaterialUsage struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Ticket is the aggregate root. All relationships are held as ids; read-side
// composition resolves them into view objects.
type Ticket struct {
	id                 uint
	category           vo.Category
	title              string
	description        string
	priority           vo.Priority
	status             vo.TicketStatus
	accessInstructions string
	images             []string
	materialsUsed      []MaterialUsage
	timeSpentMinutes   *int
	scheduledDate      *time.Time
	completedDate      *time.Time
	tenantID           uint
	propertyID         uint
	unitID             uint
	assignedStaffID    *uint
	notes              []*Note
	version            int
	loadedVersion      int
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTicket(
	category vo.Category,
	priority vo.Priority,
	title string,
	description string,
	accessInstructions string,
	images []string,
	tenantID uint,
	unitID uint,
	propertyID uint,
) (*Ticket, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if unitID == 0 {
		return nil, fmt.Errorf("unit ID is required")
	}
	if propertyID == 0 {
		return nil, fmt.Errorf("property ID is required")
	}

	if images == nil {
		images = []string{}
	}

	now := biztime.NowUTC()
	return &Ticket{
		category:           category,
		priority:           priority,
		title:              title,
		description:        description,
		accessInstructions: accessInstructions,
		images:             images,
		materialsUsed:      []MaterialUsage{},
		status:             vo.StatusPending,
		tenantID:           tenantID,
		unitID:             unitID,
		propertyID:         propertyID,
		notes:              []*Note{},
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructTicket(
	id uint,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	title string,
	description string,
	accessInstructions string,
	images []string,
	materialsUsed []MaterialUsage,
	timeSpentMinutes *int,
	scheduledDate *time.Time,
	completedDate *time.Time,
	tenantID uint,
	unitID uint,
	propertyID uint,
	assignedStaffID *uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	if images == nil {
		images = []string{}
	}
	if materialsUsed == nil {
		materialsUsed = []MaterialUsage{}
	}

	return &Ticket{
		id:                 id,
		category:           category,
		priority:           priority,
		status:             status,
		title:              title,
		description:        description,
		accessInstructions: accessInstructions,
		images:             images,
		materialsUsed:      materialsUsed,
		timeSpentMinutes:   timeSpentMinutes,
		scheduledDate:      scheduledDate,
		completedDate:      completedDate,
		tenantID:           tenantID,
		unitID:             unitID,
		propertyID:         propertyID,
		assignedStaffID:    assignedStaffID,
		notes:              []*Note{},
		version:            version,
		loadedVersion:      version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) AccessInstructions() string {
	return t.accessInstructions
}

func (t *Ticket) Images() []string {
	images := make([]string, len(t.images))
	copy(images, t.images)
	return images
}

func (t *Ticket) MaterialsUsed() []MaterialUsage {
	materials := make([]MaterialUsage, len(t.materialsUsed))
	copy(materials, t.materialsUsed)
	return materials
}

func (t *Ticket) TimeSpentMinutes() *int {
	return t.timeSpentMinutes
}

func (t *Ticket) ScheduledDate() *time.Time {
	return t.scheduledDate
}

func (t *Ticket) CompletedDate() *time.Time {
	return t.completedDate
}

func (t *Ticket) TenantID() uint {
	return t.tenantID
}

func (t *Ticket) UnitID() uint {
	return t.unitID
}

func (t *Ticket) PropertyID() uint {
	return t.propertyID
}

func (t *Ticket) AssignedStaffID() *uint {
	return t.assignedStaffID
}

func (t *Ticket) Notes() []*Note {
	notes := make([]*Note, len(t.notes))
	copy(notes, t.notes)
	return notes
}

func (t *Ticket) Version() int {
	return t.version
}

// LoadedVersion is the version of the row this aggregate was reconstructed
// from. Repositories compare it against the stored row to detect concurrent
// modification.
func (t *Ticket) LoadedVersion() int {
	return t.loadedVersion
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Assign records the staff assignment. A pending ticket moves to assigned;
// a ticket already past pending keeps its current status, so reassignment
// never regresses the lifecycle. Eligibility checks belong to the resolver.
func (t *Ticket) Assign(staffID uint, scheduledDate *time.Time) error {
	if staffID == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot assign a %s ticket", t.status)
	}

	t.assignedStaffID = &staffID
	if scheduledDate != nil {
		d := scheduledDate.UTC()
		t.scheduledDate = &d
	}

	if t.status.IsPending() {
		t.status = vo.StatusAssigned
	}

	t.touch()
	return nil
}

// ChangeStatus moves the ticket through the lifecycle. Completion via this
// path stamps the completion date so the status/date invariant holds on
// every route into the completed state.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus

	if newStatus.IsCompleted() {
		now := biztime.NowUTC()
		t.completedDate = &now
	}

	t.touch()
	return nil
}

// Complete finishes the ticket, optionally applying the consumed materials
// and time spent reported by the finishing actor.
func (t *Ticket) Complete(materials []MaterialUsage, timeSpentMinutes *int) error {
	if t.status.IsCompleted() {
		return fmt.Errorf("ticket is already completed")
	}
	if !t.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("cannot complete ticket with status %s", t.status)
	}

	if materials != nil {
		t.materialsUsed = materials
	}
	if timeSpentMinutes != nil {
		t.timeSpentMinutes = timeSpentMinutes
	}

	t.status = vo.StatusCompleted
	now := biztime.NowUTC()
	t.completedDate = &now
	t.touch()
	return nil
}

// Cancel abandons the ticket. A reason is mandatory; already-consumed
// inventory is not unwound.
func (t *Ticket) Cancel(reason string) error {
	if len(reason) == 0 {
		return fmt.Errorf("cancel reason is required")
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot cancel a %s ticket", t.status)
	}

	t.status = vo.StatusCancelled
	t.touch()
	return nil
}

// AppendNote adds an entry to the note log. The log is append-only; there is
// no removal path.
func (t *Ticket) AppendNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("note cannot be nil")
	}
	if note.TicketID() != t.id {
		return fmt.Errorf("note ticket ID mismatch")
	}

	t.notes = append(t.notes, note)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AddImage appends an image URL to the ticket.
func (t *Ticket) AddImage(url string) error {
	if len(url) == 0 {
		return fmt.Errorf("image URL cannot be empty")
	}
	t.images = append(t.images, url)
	t.touch()
	return nil
}

// SetMaterialsUsed replaces the consumed-material list wholesale. The list is
// not additive across calls; the last recording wins.
func (t *Ticket) SetMaterialsUsed(materials []MaterialUsage) {
	if materials == nil {
		materials = []MaterialUsage{}
	}
	t.materialsUsed = materials
	t.touch()
}

// SetTimeSpent records the minutes spent on the ticket.
func (t *Ticket) SetTimeSpent(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("time spent cannot be negative")
	}
	t.timeSpentMinutes = &minutes
	t.touch()
	return nil
}

// SetScheduledDate updates the planned visit date.
func (t *Ticket) SetScheduledDate(date *time.Time) {
	if date == nil {
		t.scheduledDate = nil
	} else {
		d := date.UTC()
		t.scheduledDate = &d
	}
	t.touch()
}

// UpdateDetails applies a general field update. Nil pointers leave fields
// untouched.
func (t *Ticket) UpdateDetails(
	category *vo.Category,
	priority *vo.Priority,
	title *string,
	description *string,
	accessInstructions *string,
) error {
	if category != nil {
		if !category.IsValid() {
			return fmt.Errorf("invalid category: %s", *category)
		}
		t.category = *category
	}
	if priority != nil {
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority: %s", *priority)
		}
		t.priority = *priority
	}
	if title != nil {
		if len(*title) == 0 {
			return fmt.Errorf("title cannot be empty")
		}
		if len(*title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = *title
	}
	if description != nil {
		if len(*description) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		if len(*description) > 5000 {
			return fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		t.description = *description
	}
	if accessInstructions != nil {
		t.accessInstructions = *accessInstructions
	}

	t.touch()
	return nil
}

// Validate checks the cross-field invariants of the aggregate.
func (t *Ticket) Validate() error {
	if !t.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.status.IsCompleted() != (t.completedDate != nil) {
		return fmt.Errorf("completed date must be set exactly when status is completed")
	}
	if t.assignedStaffID != nil && t.status.IsPending() {
		return fmt.Errorf("assigned ticket cannot remain pending")
	}
	if t.tenantID == 0 || t.unitID == 0 || t.propertyID == 0 {
		return fmt.Errorf("tenant, unit and property are required")
	}
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}
