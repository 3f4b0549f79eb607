package i

// Logger is a leveled logger.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
