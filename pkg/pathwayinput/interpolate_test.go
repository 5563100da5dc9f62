package pathwayinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

func series(pairs ...float64) []model.TimeSeriesPoint {
	out := make([]model.TimeSeriesPoint, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, model.TimeSeriesPoint{Time: pairs[i], Data: model.MetricValue{Value: pairs[i+1]}})
	}
	return out
}

func TestInterpolateTimeExactMatchTruncates(t *testing.T) {
	s := series(2020.7, 0, 2030.9, 1)
	got, err := interpolateTime(s, 1)
	require.NoError(t, err)
	assert.Equal(t, 2030.0, got)
}

func TestInterpolateTimeLinearInterpolationTruncates(t *testing.T) {
	s := series(2020, 0, 2030, 10)
	got, err := interpolateTime(s, 5)
	require.NoError(t, err)
	assert.Equal(t, 2025.0, got)
}

func TestInterpolateTimeOutOfRangeBelow(t *testing.T) {
	s := series(2020, 0, 2030, 10)
	_, err := interpolateTime(s, -1)
	require.Error(t, err)
	assert.Equal(t, perrors.CodeOutOfRange, err.(*perrors.OutOfRangeError).Code())
}

func TestInterpolateTimeOutOfRangeAbove(t *testing.T) {
	s := series(2020, 0, 2030, 10)
	_, err := interpolateTime(s, 11)
	require.Error(t, err)
	assert.Equal(t, perrors.CodeOutOfRange, err.(*perrors.OutOfRangeError).Code())
}

func TestInterpolateTimeEmptySeries(t *testing.T) {
	_, err := interpolateTime(nil, 1)
	require.Error(t, err)
	assert.Equal(t, perrors.CodeNoTimeSeries, perrors.GetCode(err))
}
