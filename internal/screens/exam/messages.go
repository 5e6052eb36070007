package exam

import (
	examcore "github.com/tlevesque/amfprep/internal/exam"
)

// sessionStartedMsg is sent when the working set has been drawn (or the
// draw failed).
type sessionStartedMsg struct {
	Err error
}

// submittedMsg is sent when the attempt has been scored. Report is set
// even when persisting the used ids failed, so the result survives.
type submittedMsg struct {
	Report *examcore.Report
	Err    error
}
