// Package errors routes user-facing messages to the console or the TUI status line.
package errors

// ErrorHandler is implemented by every sink a command or view reports to.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console surface a CLIHandler prints through.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages through a ColorOutput.
type CLIHandler struct {
	colors ColorOutput
}

var _ ErrorHandler = (*CLIHandler)(nil)

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string)   { h.colors.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.colors.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.colors.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.colors.Success(msg) }

// Report sends err to h as an error message. A nil err is ignored.
func Report(h ErrorHandler, prefix string, err error) {
	if err == nil {
		return
	}
	if prefix == "" {
		h.Error(err.Error())
		return
	}
	h.Error(prefix + ": " + err.Error())
}
