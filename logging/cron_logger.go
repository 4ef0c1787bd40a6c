package logging

import "log"

// CronLogger - Routes scheduler output through the standard logger with a level prefix.
type CronLogger struct {
	// Implements gocron.Logger
}

func (c *CronLogger) Debug(msg string, args ...any) {
	c.print("DEBUG", msg, args)
}

func (c *CronLogger) Error(msg string, args ...any) {
	c.print("ERROR", msg, args)
}

func (c *CronLogger) Info(msg string, args ...any) {
	c.print("INFO", msg, args)
}

func (c *CronLogger) Warn(msg string, args ...any) {
	c.print("WARN", msg, args)
}

// gocron passes structured key/value pairs rather than format arguments.
func (c *CronLogger) print(level string, msg string, args []any) {
	if len(args) == 0 {
		log.Printf("[%s] [cron] %s", level, msg)
		return
	}
	log.Printf("[%s] [cron] %s %v", level, msg, args)
}
