package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger
)

// InitLogger 初始化 zap 日志记录器
// 同时输出到控制台和滚动日志文件，并替换全局 logger
func InitLogger() {
	writeSyncer := getLogWriter()
	encoder := getEncoder()
	core := zapcore.NewCore(encoder, writeSyncer, zapcore.InfoLevel)

	Logger = zap.New(core, zap.AddCaller())
	Sugar = Logger.Sugar()

	zap.ReplaceGlobals(Logger)
}

// getEncoder 设置日志编码格式
func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// getLogWriter 指定日志写入位置 (文件和控制台)
func getLogWriter() zapcore.WriteSyncer {
	// 使用 lumberjack 实现日志切割和归档
	lumberJackLogger := &lumberjack.Logger{
		Filename:   "./logs/zipway.log",
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // 天
		Compress:   false,
	}
	return zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(lumberJackLogger))
}
