package purchaseorder

import (
	"fmt"
	"strings"

	"purchasing/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order.
//
//	DRAFT ──> APPROVED ──> SENT
//	  │          │           │
//	  └──────────┴───────────┴──> CANCELLED
type Status string

const (
	Draft     Status = "DRAFT"
	Approved  Status = "APPROVED"
	Sent      Status = "SENT"
	Cancelled Status = "CANCELLED"
)

func transitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:     {Approved, Cancelled},
		Approved:  {Sent, Cancelled},
		Sent:      {Cancelled},
		Cancelled: {},
	}
}

// ParseStatus accepts the upper-case status names, ignoring surrounding
// whitespace and case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// AllowedTransitions lists the statuses reachable from s in one step.
func (s Status) AllowedTransitions() []Status {
	allowed := transitions()[s]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions()[s]) == 0
}

// TransitionTo returns target when the table allows s -> target.
// An unknown target is a validation error; a known target outside the table
// (including s -> s) is a conflict.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewConflictErrorWithCause(
			fmt.Sprintf("cannot transition from %s to %s: %s", s, target, s.describeTransitions()),
			ErrTransitionNotAllowed,
		)
	}
	return target, nil
}

func (s Status) describeTransitions() string {
	if s.IsTerminal() {
		return fmt.Sprintf("%s is terminal", s)
	}
	allowed := s.AllowedTransitions()
	names := make([]string, len(allowed))
	for i, status := range allowed {
		names[i] = status.String()
	}
	return "allowed " + strings.Join(names, ", ")
}
