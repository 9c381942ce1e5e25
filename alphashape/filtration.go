package alphashape

import "iter"

// Filtration yields every classification change in increasing α; within one
// α, by (dimension, key, class). Each call starts from the beginning, and
// stopping early is always safe.
func (s *Shape) Filtration() iter.Seq[Event] {
	events := s.spectrum.events

	return func(yield func(Event) bool) {
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

// FiltrationSlice returns a copy of the whole filtration.
func (s *Shape) FiltrationSlice() []Event {
	return append([]Event(nil), s.spectrum.events...)
}
