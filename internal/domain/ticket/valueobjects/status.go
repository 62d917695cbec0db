package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusPending         TicketStatus = "pending"
	StatusAssigned        TicketStatus = "assigned"
	StatusInProgress      TicketStatus = "in_progress"
	StatusWaitingForParts TicketStatus = "waiting_for_parts"
	StatusCompleted       TicketStatus = "completed"
	StatusCancelled       TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:         true,
	StatusAssigned:        true,
	StatusInProgress:      true,
	StatusWaitingForParts: true,
	StatusCompleted:       true,
	StatusCancelled:       true,
}

// ticketStatusTransitions encodes the lifecycle. Completed and cancelled are
// terminal; cancellation is reachable from every non-terminal state.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusAssigned,
		StatusCancelled,
	},
	StatusAssigned: {
		StatusInProgress,
		StatusWaitingForParts,
		StatusCompleted,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusWaitingForParts,
		StatusCompleted,
		StatusCancelled,
	},
	StatusWaitingForParts: {
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsAssigned() bool {
	return ts == StatusAssigned
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaitingForParts() bool {
	return ts == StatusWaitingForParts
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

// IsTerminal reports whether no further transitions are possible.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusCompleted || ts == StatusCancelled
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// StatusValues lists all valid statuses, used for binding validation.
func StatusValues() []string {
	return []string{
		StatusPending.String(),
		StatusAssigned.String(),
		StatusInProgress.String(),
		StatusWaitingForParts.String(),
		StatusCompleted.String(),
		StatusCancelled.String(),
	}
}
