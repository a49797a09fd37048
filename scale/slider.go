// Package scale implements the value model of a float-valued slider control
// with a numeric scale above it.
/*

Integer-valued slider controls are wrapped so that callers work with float
values throughout: the control's value is held as an integer step index, and
a configurable float interval defines the size of one step, so

	value = index · interval + minimum

An additional tick interval governs the numeric scale, a row of evenly
spaced labels a host widget paints above the control. The model computes
the label texts and their fractional positions; drawing them is the host's
business.

Typical usage:

	s := scale.New()
	s.SetRange(0.0, 20.0)
	if err := s.SetInterval(0.1); err != nil { ... }
	s.SetTickInterval(5)
	s.SetValue(12.5)

All delegation to the underlying integer control is explicit: the model
exposes exactly the operations it supports.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scale'
func tracer() tracing.Trace {
	return tracing.Select("scale")
}

// ErrZeroInterval indicates a step interval of zero, which would divide by
// zero in the value arithmetic. It is rejected at configuration time.
var ErrZeroInterval = errors.New("interval of zero specified")

// Slider is the value model of a float-valued range control. The zero
// range is 0…99 with an interval of 1 and no tick marks, mirroring the
// defaults of common integer slider controls; use New to get one.
type Slider struct {
	min      float64
	max      float64
	interval float64 // float size of one integer step
	tick     float64 // scale label spacing; < 0 means no scale
	index    int     // the underlying integer control value
	marks    *treemap.Map
}

// Mark is one entry of the numeric scale: a label at a fractional position
// within the control's width (0 = left edge, 1 = right edge).
type Mark struct {
	Pos   float64
	Label string
}

// New creates a slider model with the default range 0…99, interval 1 and
// no tick marks.
func New() *Slider {
	s := &Slider{
		min:      0,
		max:      99,
		interval: 1,
		tick:     -1,
	}
	s.rangeAdjusted()
	return s
}

// Debug Stringer for a slider model.
func (s *Slider) String() string {
	return fmt.Sprintf("slider[%g…%g ÷ %g = %g]", s.min, s.max, s.interval, s.Value())
}

// Value returns the current float value, i.e. the step index scaled by the
// interval, offset from the minimum.
func (s *Slider) Value() float64 {
	return float64(s.index)*s.interval + s.min
}

// SetValue sets the value, rounded to the nearest multiple of the interval
// above the minimum and clamped to the range.
func (s *Slider) SetValue(value float64) {
	s.setIndex(int(math.Round((value - s.min) / s.interval)))
}

// Index returns the underlying integer step index.
func (s *Slider) Index() int {
	return s.index
}

// SetIndex sets the underlying integer step index, clamped to [0, Steps].
func (s *Slider) SetIndex(index int) {
	s.setIndex(index)
}

// Steps returns the number of interval steps the current range spans.
func (s *Slider) Steps() int {
	return int((s.max - s.min) / s.interval)
}

// Minimum returns the lower bound of the range.
func (s *Slider) Minimum() float64 {
	return s.min
}

// SetMinimum sets the lower bound of the range.
func (s *Slider) SetMinimum(value float64) {
	s.min = value
	s.rangeAdjusted()
}

// Maximum returns the upper bound of the range.
func (s *Slider) Maximum() float64 {
	return s.max
}

// SetMaximum sets the upper bound of the range.
func (s *Slider) SetMaximum(value float64) {
	s.max = value
	s.rangeAdjusted()
}

// SetRange sets both bounds at once.
func (s *Slider) SetRange(min, max float64) {
	s.min = min
	s.max = max
	s.rangeAdjusted()
}

// Interval returns the float size of one step.
func (s *Slider) Interval() float64 {
	return s.interval
}

// SetInterval sets the float size of one step. An interval of zero is
// rejected with ErrZeroInterval before any arithmetic depends on it.
func (s *Slider) SetInterval(value float64) error {
	if value == 0 {
		return ErrZeroInterval
	}
	s.interval = value
	s.rangeAdjusted()
	return nil
}

// TickInterval returns the scale label spacing; negative means no scale.
func (s *Slider) TickInterval() float64 {
	return s.tick
}

// SetTickInterval sets the scale label spacing. A non-positive value
// disables the scale, leaving only the two end labels.
func (s *Slider) SetTickInterval(value float64) {
	s.tick = value
	s.rangeAdjusted()
}

// Ticks returns the scale's marks in left-to-right order. Labels are the
// tick values in shortest-form decimal notation; positions are fractions
// of the control's width.
func (s *Slider) Ticks() []Mark {
	marks := make([]Mark, 0, s.marks.Size())
	it := s.marks.Iterator()
	for it.Next() {
		marks = append(marks, Mark{Pos: it.Key().(float64), Label: it.Value().(string)})
	}
	return marks
}

// Re-derive the step count and the scale marks after any range, interval
// or tick change.
func (s *Slider) rangeAdjusted() {
	s.setIndex(s.index)

	r := s.max - s.min
	divs := 1
	if s.tick > 0 {
		divs = int(math.Round(r / s.tick))
		if divs < 1 {
			divs = 1
		}
	}
	tracer().Debugf("scale spans %d steps, %d divisions", s.Steps(), divs)
	s.marks = treemap.NewWith(utils.Float64Comparator)
	for i := 0; i <= divs; i++ {
		val := s.min + float64(i)*r/float64(divs)
		s.marks.Put(float64(i)/float64(divs), fmt.Sprintf("%g", val))
	}
}

func (s *Slider) setIndex(index int) {
	if max := s.Steps(); index > max {
		index = max
	}
	if index < 0 {
		index = 0
	}
	s.index = index
}
