package scale

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestValueRounding(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New()
	s.SetRange(0, 20)
	assert.NoError(t, s.SetInterval(0.1))
	s.SetValue(3.14)
	assert.InDelta(t, 3.1, s.Value(), 1e-9, "value should snap to the interval grid")
	s.SetValue(3.17)
	assert.InDelta(t, 3.2, s.Value(), 1e-9)
}

func TestValueOffsetFromMinimum(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New()
	s.SetRange(-10, 10)
	assert.NoError(t, s.SetInterval(0.25))
	s.SetValue(-3.1)
	assert.InDelta(t, -3.0, s.Value(), 1e-9)
	assert.Equal(t, 28, s.Index())
}

func TestZeroIntervalRejected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New()
	err := s.SetInterval(0)
	assert.ErrorIs(t, err, ErrZeroInterval)
	assert.Equal(t, 1.0, s.Interval(), "rejected interval must leave the old one in place")
}

func TestClampToRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New()
	s.SetRange(0, 10)
	s.SetValue(25)
	assert.Equal(t, 10.0, s.Value())
	s.SetValue(-5)
	assert.Equal(t, 0.0, s.Value())
}

func TestTickMarks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New()
	s.SetRange(0, 20)
	s.SetTickInterval(5)
	marks := s.Ticks()
	if assert.Len(t, marks, 5) {
		labels := make([]string, len(marks))
		for i, m := range marks {
			labels[i] = m.Label
		}
		assert.Equal(t, []string{"0", "5", "10", "15", "20"}, labels)
		assert.InDelta(t, 0.0, marks[0].Pos, 1e-9)
		assert.InDelta(t, 0.25, marks[1].Pos, 1e-9)
		assert.InDelta(t, 1.0, marks[4].Pos, 1e-9)
	}
}

func TestDefaultScaleHasEndLabelsOnly(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	marks := New().Ticks()
	if assert.Len(t, marks, 2) {
		assert.Equal(t, "0", marks[0].Label)
		assert.Equal(t, "99", marks[1].Label)
	}
}

func TestIndexSurvivesTickChange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := New()
	s.SetRange(0, 20)
	assert.NoError(t, s.SetInterval(0.25))
	s.SetValue(12.5)
	s.SetTickInterval(4)
	assert.InDelta(t, 12.5, s.Value(), 1e-9)
}
