package prompts

import (
	"fmt"
	"strings"
)

// Options is the candidate set of a choice prompt.
//
// Every value has a display string computed once at construction. Filtering
// works on display strings and yields indices into the original values, in
// their original order.
type Options[T any] struct {
	allOptions         []T
	transformedOptions []string
	filteredOptions    []int
}

// NewOptions builds an option set. A nil transform displays values with fmt.Sprint.
func NewOptions[T any](values []T, transform func(T) string) *Options[T] {
	if transform == nil {
		transform = func(v T) string { return fmt.Sprint(v) }
	}

	all := make([]T, len(values))
	copy(all, values)

	transformed := make([]string, len(all))
	filtered := make([]int, len(all))
	for i, v := range all {
		transformed[i] = transform(v)
		filtered[i] = i
	}

	return &Options[T]{
		allOptions:         all,
		transformedOptions: transformed,
		filteredOptions:    filtered,
	}
}

// Filter keeps the options whose display string contains text. Matching is
// case-sensitive; an empty text matches everything.
func (o *Options[T]) Filter(text string) {
	o.filteredOptions = o.filteredOptions[:0]
	for i, option := range o.transformedOptions {
		if strings.Contains(option, text) {
			o.filteredOptions = append(o.filteredOptions, i)
		}
	}
}

// FilteredOptions returns the indices of the options matching the current filter.
func (o *Options[T]) FilteredOptions() []int {
	return o.filteredOptions
}

// TransformedOptions returns the display strings of all options.
func (o *Options[T]) TransformedOptions() []string {
	return o.transformedOptions
}

// AllOptions returns the remaining option values.
func (o *Options[T]) AllOptions() []T {
	return o.allOptions
}

// remove takes the value at index i out of the backing store. Indices after i
// shift down by one, so callers removing several values must go from the
// highest index to the lowest. Display strings are left in place.
func (o *Options[T]) remove(i int) T {
	v := o.allOptions[i]
	o.allOptions = append(o.allOptions[:i], o.allOptions[i+1:]...)
	return v
}

// windowStart returns the first filtered position shown when at most
// maxVisible rows fit. The current row stays centered except near either end
// of the list, where the window is pinned.
func windowStart(current, maxVisible, filteredLen int) int {
	start := current - maxVisible/2
	if limit := filteredLen - maxVisible; start > limit {
		start = limit
	}
	if start < 0 {
		start = 0
	}
	return start
}
