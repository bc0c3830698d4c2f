package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoEditAuthor(l *zap.Logger, msg string, traceID, authorName string, born int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.Int("born", born),
		zap.String("action", EditAuthor))
}

func ErrorEditAuthor(l *zap.Logger, err error, msg string, traceID, authorName string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("author_name", authorName),
		zap.Error(err),
		zap.String("action", EditAuthor))
}

func InfoAllAuthors(l *zap.Logger, msg string, traceID string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int("authors", count),
		zap.String("action", AllAuthors))
}

func ErrorAllAuthors(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", AllAuthors))
}
