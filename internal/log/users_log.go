package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoCreateUser(l *zap.Logger, msg string, traceID, username string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("username", username),
			zap.String("action", CreateUser))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("user_id", id[0]),
		zap.String("username", username),
		zap.String("action", CreateUser))
}

func ErrorCreateUser(l *zap.Logger, err error, msg string, traceID, username string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("username", username),
		zap.Error(err),
		zap.String("action", CreateUser))
}

func InfoLogin(l *zap.Logger, msg string, traceID, username string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("username", username),
		zap.String("action", Login))
}

func ErrorLogin(l *zap.Logger, err error, msg string, traceID, username string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("username", username),
		zap.Error(err),
		zap.String("action", Login))
}
