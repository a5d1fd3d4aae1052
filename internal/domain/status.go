package domain

import "fmt"

// Status is the unified order status vocabulary shared by both
// fulfillment modes.
type Status string

const (
	// StatusNew is the initial status of every ingested or created order.
	StatusNew Status = "NEW"
	// StatusInProgress marks carrier orders that received an AWB.
	StatusInProgress Status = "In Progress"
	// StatusHMI holds an order whose priced amount exceeds the account balance.
	StatusHMI Status = "HMI"
	// StatusRTD marks a funded order cleared for carrier handoff.
	StatusRTD Status = "RTD"
	// StatusSchedule marks a funded carrier order awaiting pickup scheduling.
	StatusSchedule Status = "Schedule"
	// StatusReceived marks an order with a scheduled carrier pickup.
	StatusReceived Status = "Received"
	// StatusPNA pulls an order aside while a line item is unfulfillable.
	StatusPNA Status = "PNA"
	// StatusShipped marks a carrier-confirmed or manually marked shipment.
	StatusShipped Status = "SHIPPED"
	// StatusArchived parks an order out of the active pipeline.
	StatusArchived Status = "Archived"
	// StatusRA pulls an order aside for manual reconciliation.
	StatusRA Status = "RA"
)

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// transitions is the exhaustive table of legal status changes. Any
// pair not listed here is rejected. Reversals (SHIPPED->RTD,
// Archived->HMI) are intentional first-class transitions. Billing may
// run before or after AWB assignment, so In Progress reaches the same
// funded/held statuses as NEW.
var transitions = map[Status][]Status{
	StatusNew:        {StatusHMI, StatusRTD, StatusSchedule, StatusInProgress},
	StatusInProgress: {StatusHMI, StatusRTD, StatusSchedule, StatusPNA, StatusShipped},
	StatusHMI:        {StatusRTD, StatusSchedule, StatusArchived, StatusRA},
	StatusRTD:        {StatusPNA, StatusReceived, StatusShipped, StatusArchived},
	StatusSchedule:   {StatusReceived, StatusShipped, StatusArchived},
	StatusReceived:   {StatusShipped},
	StatusPNA:        {StatusRTD, StatusShipped},
	StatusShipped:    {StatusRTD},
	StatusArchived:   {StatusHMI},
	StatusRA:         {},
}

// IllegalTransitionError reports a status change not present in the
// transition table, citing current and requested status.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %q to %q", e.From, e.To)
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates and applies a status change on the order. It is
// the only way order status may ever change; callers persist the order
// afterwards (atomically with any ledger effect the change carries).
func (o *Order) Transition(to Status) error {
	if !CanTransition(o.Status, to) {
		return &IllegalTransitionError{From: o.Status, To: to}
	}
	o.Status = to
	return nil
}

// FundedStatus is the status a successfully charged order advances to,
// which differs by fulfillment mode.
func FundedStatus(mode FulfillmentMode) Status {
	if mode == FulfillmentEasyShip {
		return StatusRTD
	}
	return StatusSchedule
}
