package instance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/instance"
)

const sampleInstance = `COMMENT: sample
TYPE: CEVRP
OPTIMAL_VALUE: 42.5
VEHICLES: 1
DIMENSION: 3
STATIONS: 1
CAPACITY: 10
ENERGY_CAPACITY: 100
ENERGY_CONSUMPTION: 1
NODE_COORD_SECTION
1 0 0
2 3 0
3 0 4
DEMAND_SECTION
1 0
2 1
3 1
STATIONS_COORD_SECTION
DEPOT_SECTION
1
-1
EOF
`

func TestParseValidInstance(t *testing.T) {
	inst, err := instance.Parse(strings.NewReader(sampleInstance))
	require.NoError(t, err)
	assert.Equal(t, 10, inst.Capacity)
	assert.Equal(t, "1", inst.DepotKey())
	require.NotNil(t, inst.OptimalValue)
	assert.InDelta(t, 42.5, *inst.OptimalValue, 1e-9)
	assert.ElementsMatch(t, []string{"2", "3"}, inst.Customers())
}

func TestParseRejectsMalformedHeader(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("NOT A HEADER LINE\nEOF\n"))
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestParseRejectsMissingRequiredHeaders(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("COMMENT: x\nNODE_COORD_SECTION\n1 0 0\nDEPOT_SECTION\n1\nEOF\n"))
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}
