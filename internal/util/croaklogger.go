package util

import log "github.com/sirupsen/logrus"

// CroakLogger adapts logrus to the croak.Logger interface
type CroakLogger struct{}

func (l *CroakLogger) Debug(message string) {
	log.Debug(message)
}

func (l *CroakLogger) Info(message string) {
	log.Info(message)
}

func (l *CroakLogger) Error(message string) {
	log.Error(message)
}
