package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityNormal    Priority = "normal"
	PriorityUrgent    Priority = "urgent"
	PriorityEmergency Priority = "emergency"
)

var validPriorities = map[Priority]bool{
	PriorityLow:       true,
	PriorityNormal:    true,
	PriorityUrgent:    true,
	PriorityEmergency: true,
}

// priorityRanks orders priorities by urgency. Higher rank sorts first in
// ticket listings.
var priorityRanks = map[Priority]int{
	PriorityLow:       1,
	PriorityNormal:    2,
	PriorityUrgent:    3,
	PriorityEmergency: 4,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// Rank returns the urgency rank of the priority; higher means more urgent.
func (p Priority) Rank() int {
	rank, ok := priorityRanks[p]
	if !ok {
		return 0
	}
	return rank
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// PriorityValues lists all valid priorities, used for binding validation.
func PriorityValues() []string {
	return []string{
		PriorityLow.String(),
		PriorityNormal.String(),
		PriorityUrgent.String(),
		PriorityEmergency.String(),
	}
}
