package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allStatuses() []Status {
	return []Status{
		StatusNew, StatusInProgress, StatusHMI, StatusRTD, StatusSchedule,
		StatusReceived, StatusPNA, StatusShipped, StatusArchived, StatusRA,
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
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

	// Every pair not listed above must be rejected.
	for _, from := range allStatuses() {
		allowedSet := make(map[Status]bool)
		for _, to := range allowed[from] {
			allowedSet[to] = true
		}
		for _, to := range allStatuses() {
			got := CanTransition(from, to)
			assert.Equal(t, allowedSet[to], got, "transition %s -> %s", from, to)
		}
	}
}

func TestOrderTransition(t *testing.T) {
	tests := []struct {
		name          string
		from          Status
		to            Status
		expectedError bool
	}{
		{name: "new order can be held", from: StatusNew, to: StatusHMI},
		{name: "new order can be funded to RTD", from: StatusNew, to: StatusRTD},
		{name: "held order can be archived", from: StatusHMI, to: StatusArchived},
		{name: "awb-assigned order can be funded", from: StatusInProgress, to: StatusSchedule},
		{name: "awb-assigned order can be held", from: StatusInProgress, to: StatusHMI},
		{name: "archived order can be restored", from: StatusArchived, to: StatusHMI},
		{name: "shipped order can be unshipped", from: StatusShipped, to: StatusRTD},
		{name: "new order cannot ship directly", from: StatusNew, to: StatusShipped, expectedError: true},
		{name: "return adjusted is terminal", from: StatusRA, to: StatusRTD, expectedError: true},
		{name: "received cannot go back to RTD", from: StatusReceived, to: StatusRTD, expectedError: true},
		{name: "shipped cannot be archived", from: StatusShipped, to: StatusArchived, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{Status: tt.from}
			err := order.Transition(tt.to)
			if tt.expectedError {
				assert.Error(t, err)
				var illegal *IllegalTransitionError
				assert.True(t, errors.As(err, &illegal))
				assert.Equal(t, tt.from, illegal.From)
				assert.Equal(t, tt.to, illegal.To)
				assert.Equal(t, tt.from, order.Status, "status must not change on a rejected transition")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, order.Status)
			}
		})
	}
}

func TestFundedStatus(t *testing.T) {
	assert.Equal(t, StatusRTD, FundedStatus(FulfillmentEasyShip))
	assert.Equal(t, StatusSchedule, FundedStatus(FulfillmentCarrier))
}

func TestStatusValid(t *testing.T) {
	for _, s := range allStatuses() {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, Status("DELIVERED").Valid())
	assert.False(t, Status("").Valid())
}
