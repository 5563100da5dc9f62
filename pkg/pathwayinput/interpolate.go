package pathwayinput

import (
	"math"
	"sort"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// interpolateTime maps a metric value v onto the calendar axis of series, a
// (time, value) scenario time series sorted ascending by value. An exact
// match returns that sample's time, truncated to an integer (intentionally,
// per the source this ports). Otherwise v is located between two samples
// via binary search and linearly interpolated, again truncated to an
// integer. v outside the series' value range fails with CodeOutOfRange.
func interpolateTime(series []model.TimeSeriesPoint, v float64) (float64, error) {
	if len(series) == 0 {
		return 0, perrors.New(perrors.CodeNoTimeSeries, "interpolate_time: empty time series")
	}

	for _, p := range series {
		if p.Data.Value == v {
			return math.Trunc(p.Time), nil
		}
	}

	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Data.Value
	}
	i := sort.SearchFloat64s(values, v)
	if i == 0 || i == len(series) {
		return 0, &perrors.OutOfRangeError{
			Subject: "tipping point value",
			Value:   v,
			Low:     values[0],
			High:    values[len(values)-1],
		}
	}

	t0, v0 := series[i-1].Time, values[i-1]
	t1, v1 := series[i].Time, values[i]
	frac := (v - v0) / (v1 - v0)
	return math.Trunc(t0 + frac*(t1-t0)), nil
}
