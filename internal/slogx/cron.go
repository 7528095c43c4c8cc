package slogx

import "log/slog"

// CronLogger adapts a *slog.Logger to the robfig/cron Logger interface.
type CronLogger struct {
	L *slog.Logger
}

func (c CronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.L.Debug("cron: "+msg, keysAndValues...)
}

func (c CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.L.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
