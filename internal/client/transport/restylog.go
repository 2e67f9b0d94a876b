package transport

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tripplanner/internal/logging"
)

// restyLogger routes resty's own diagnostics into the application logger.
type restyLogger struct {
	logger logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(context.Background(), fmt.Sprintf(format, v...), "source", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(context.Background(), fmt.Sprintf(format, v...), "source", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(context.Background(), fmt.Sprintf(format, v...), "source", "resty")
}
