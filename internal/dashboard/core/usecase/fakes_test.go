package usecase_test

import "time"

// Fakes implementing the clock and random ports.

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

type intBetweenCall struct {
	min int
	max int
}

type fakeRandom struct {
	IntBetweenFn func(min, max int) int
	Float64Fn    func() float64

	intBetweenCalls []intBetweenCall
}

func (f *fakeRandom) IntBetween(min, max int) int {
	f.intBetweenCalls = append(f.intBetweenCalls, intBetweenCall{min: min, max: max})
	if f.IntBetweenFn != nil {
		return f.IntBetweenFn(min, max)
	}
	return 0
}

func (f *fakeRandom) Float64() float64 {
	if f.Float64Fn != nil {
		return f.Float64Fn()
	}
	return 0
}

// fixedInstant is a frozen reference time used across the generator tests.
var fixedInstant = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
