package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type statusTransitionTestCase struct {
	from     RequestStatus
	to       RequestStatus
	expected bool
}

func TestStatusCanMoveTo(t *testing.T) {
	cases := []statusTransitionTestCase{
		{HelpPending, HelpPending, true},
		{HelpPending, HelpAssigned, true},
		{HelpPending, HelpFulfilled, true},
		{HelpAssigned, HelpFulfilled, true},
		{HelpAssigned, HelpPending, false},
		{HelpFulfilled, HelpAssigned, false},
		{HelpFulfilled, HelpPending, false},
		{HelpPending, RequestStatus("Cancelled"), false},
		{RequestStatus(""), HelpPending, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, c.from.CanMoveTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestRequestTypeAndUrgencyValid(t *testing.T) {
	assert.True(t, RequestType("Food/Water").Valid())
	assert.True(t, Evacuation.Valid())
	assert.False(t, RequestType("Food").Valid())

	assert.True(t, Urgency("Urgent").Valid())
	assert.False(t, Urgency("urgent").Valid())
}

func TestHelpRequestPatchApply(t *testing.T) {
	r := HelpRequest{
		ID:          "req-1",
		Type:        Medical,
		Urgency:     UrgencyLow,
		PeopleCount: 1,
		Description: "twisted ankle",
		Status:      HelpPending,
	}

	count := 3
	urgency := UrgencyHigh
	HelpRequestPatch{PeopleCount: &count, Urgency: &urgency}.Apply(&r)

	assert.Equal(t, 3, r.PeopleCount)
	assert.Equal(t, UrgencyHigh, r.Urgency)
	assert.Equal(t, Medical, r.Type)
	assert.Equal(t, "twisted ankle", r.Description)
	assert.Equal(t, HelpPending, r.Status)
}
