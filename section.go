package joblog

// StartSection logs "STARTED <title>" at the current depth and opens the section.
// Records emitted afterwards are indented one level deeper.
func (l *Logger) StartSection(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureReady()
	l.startSectionLocked(title)
}

// startSectionLocked is StartSection for callers holding l.mu
func (l *Logger) startSectionLocked(title string) {
	l.emitLocked(SeverityStatus, l.state.depth(), sectionStarted+title, "")
	l.state.push(title)
}

// CompleteSection closes the innermost section and logs "COMPLETED <title>" at the
// depth of its STARTED line. Closing the outermost section adds a blank line.
//
// With no open section an ERROR record is written instead and the returned error
// matches ErrNoOpenSection. The process exits when TerminateOnSectionError is set.
func (l *Logger) CompleteSection() error {
	l.mu.Lock()
	l.ensureReady()

	title, ok := l.state.pop()
	if !ok {
		outcome := OutcomeRecoverable
		if l.cfg.TerminateOnSectionError {
			outcome = OutcomeFatal
		}
		err := l.errorLocked(outcome, noOpenSection, ErrNoOpenSection)
		l.mu.Unlock()

		l.terminate(outcome)
		return err
	}

	trailer := ""
	if l.state.depth() == 0 {
		trailer = "\n"
	}
	l.emitLocked(SeverityStatus, l.state.depth(), sectionCompleted+title, trailer)
	l.mu.Unlock()
	return nil
}

// Section runs fn inside a section named title.
// The section is completed after fn returns, and fn's error is returned.
func (l *Logger) Section(title string, fn func() error) error {
	l.StartSection(title)
	fnErr := fn()
	if err := l.CompleteSection(); err != nil {
		return combineErrors(fnErr, err)
	}
	return fnErr
}

// Sections returns the open section titles, outermost first
func (l *Logger) Sections() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	titles := make([]string, len(l.state.sections))
	copy(titles, l.state.sections)
	return titles
}

// SectionDepth returns the number of open sections
func (l *Logger) SectionDepth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.depth()
}
