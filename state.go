// FILE: state.go
package joblog

// State encapsulates the runtime state of the logger.
// All access goes through Logger methods holding Logger.mu.
type State struct {
	sinks        []SinkRef // Empty iff the logger is uninitialized
	sections     []string  // Open section titles, outermost first
	reportMemory bool
	reportDisk   bool
}

// initialized reports whether any sink is registered
func (s *State) initialized() bool {
	return len(s.sinks) > 0
}

// reset returns the state to the uninitialized condition
func (s *State) reset() {
	s.sinks = nil
	s.sections = nil
	s.reportMemory = false
	s.reportDisk = false
}

// depth is the number of currently open sections
func (s *State) depth() int {
	return len(s.sections)
}

// hasSink reports whether an equal sink is already registered
func (s *State) hasSink(ref SinkRef) bool {
	for _, existing := range s.sinks {
		if existing == ref {
			return true
		}
	}
	return false
}

// fileSink returns the registered file sink, if any
func (s *State) fileSink() (SinkRef, bool) {
	for _, existing := range s.sinks {
		if existing.Kind == SinkFile {
			return existing, true
		}
	}
	return SinkRef{}, false
}

// push opens a section
func (s *State) push(title string) {
	s.sections = append(s.sections, title)
}

// pop closes the innermost section
func (s *State) pop() (string, bool) {
	n := len(s.sections)
	if n == 0 {
		return "", false
	}
	title := s.sections[n-1]
	s.sections = s.sections[:n-1]
	return title, true
}
