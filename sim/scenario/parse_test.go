package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tefika24/taxi-app-official/sim"
)

func TestParseEvents_ValidFile(t *testing.T) {
	input := strings.NewReader(`
# drivers come online first
0 DriverRequest Amaranth 1,1 1

10 RiderRequest Cerise 4,2 1,5 15
`)

	events, err := ParseEvents(input)
	require.NoError(t, err)
	require.Len(t, events, 2)

	driverReq, ok := events[0].(*sim.DriverRequest)
	require.True(t, ok, "first event should be a DriverRequest, got %T", events[0])
	assert.Equal(t, int64(0), driverReq.Timestamp())
	assert.Equal(t, "Amaranth", driverReq.Driver.ID)
	assert.Equal(t, sim.NewLocation(1, 1), driverReq.Driver.Location)
	assert.Equal(t, 1, driverReq.Driver.Speed)

	riderReq, ok := events[1].(*sim.RiderRequest)
	require.True(t, ok, "second event should be a RiderRequest, got %T", events[1])
	assert.Equal(t, int64(10), riderReq.Timestamp())
	assert.Equal(t, "Cerise", riderReq.Rider.ID)
	assert.Equal(t, sim.NewLocation(4, 2), riderReq.Rider.Origin)
	assert.Equal(t, sim.NewLocation(1, 5), riderReq.Rider.Destination)
	assert.Equal(t, int64(15), riderReq.Rider.Patience)
}

func TestParseEvents_SkipsBlankAndCommentLines(t *testing.T) {
	input := strings.NewReader("# only comments\n\n   \n# and blanks\n")

	events, err := ParseEvents(input)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseEvents_MalformedInput(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"non-numeric timestamp", "x RiderRequest Cerise 4,2 1,5 15"},
		{"negative timestamp", "-1 RiderRequest Cerise 4,2 1,5 15"},
		{"unknown kind", "5 Teleport Cerise 4,2"},
		{"missing driver fields", "0 DriverRequest Amaranth"},
		{"bad driver location", "0 DriverRequest Amaranth one,1 1"},
		{"zero speed", "0 DriverRequest Amaranth 1,1 0"},
		{"negative speed", "0 DriverRequest Amaranth 1,1 -2"},
		{"missing rider fields", "10 RiderRequest Cerise 4,2 1,5"},
		{"bad rider destination", "10 RiderRequest Cerise 4,2 nowhere 15"},
		{"non-positive patience", "10 RiderRequest Cerise 4,2 1,5 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseEvents(strings.NewReader(tc.line))
			assert.Error(t, err)
		})
	}
}

func TestParseEvents_ErrorNamesOffendingLine(t *testing.T) {
	input := strings.NewReader("0 DriverRequest Amaranth 1,1 1\nbogus line here\n")

	_, err := ParseEvents(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseEventFile_MissingFile(t *testing.T) {
	_, err := ParseEventFile("does/not/exist.txt")
	assert.Error(t, err)
}
