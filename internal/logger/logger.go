package logger

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	AppName = "PileALire"

	LogError   = "ERROR"
	LogInfo    = "INFO"
	LogWarning = "WARN"
)

// Until InitLogger runs, messages are discarded so library code stays quiet in tests.
var logger = zap.NewNop().Sugar()

func InitLogger() {
	err := os.MkdirAll("logs", os.ModePerm)
	if err != nil {
		log.Fatalf("Failed to create logs folder: %v", err)
	}

	logFile, err := os.OpenFile(filepath.Join("logs", AppName+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(logFile)),
		zap.DebugLevel,
	)
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	LogMsg(LogInfo, "Application started")
}

func LogMsg(level string, format string, v ...interface{}) {
	switch level {
	case LogError:
		logger.Errorf(format, v...)
	case LogWarning:
		logger.Warnf(format, v...)
	default:
		logger.Infof(format, v...)
	}
}

// Sync flushes buffered log entries; call it before exit.
func Sync() {
	_ = logger.Sync()
}
