package core

// Logger is any leveled logging service.
//
// Error and Fatal accept extra args to report alongside the message; a
// user.User among them identifies the affected account to the error tracker.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
