package badger

import "go.uber.org/zap"

// zapLogger routes Badger's internal logging into zap.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(logger *zap.Logger) *zapLogger {
	return &zapLogger{sugar: logger.Named("badger").Sugar()}
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func (l *zapLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}
