package tui

import "github.com/Ambaicci/zwip/internal/wizard"

// settledMsg reports that the processing step finished, one way or the other.
type settledMsg struct {
	result wizard.Result
}

// confirmRefusedMsg reports that the final pre-commit validation failed and
// the wizard stayed on the confirm step.
type confirmRefusedMsg struct {
	err error
}
