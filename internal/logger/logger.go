package logger

import (
	"github.com/sirupsen/logrus"
)

// Log общий логгер приложения. До вызова Init равен nil, используйте L().
var Log *logrus.Logger

// Init инициализирует структурированный логгер.
// В development включается текстовый формат, иначе JSON.
func Init(level string, development bool) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if development {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		return
	}
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// L возвращает инициализированный логгер или стандартный logrus, если Init ещё не вызывался.
func L() *logrus.Logger {
	if Log != nil {
		return Log
	}
	return logrus.StandardLogger()
}

// Component возвращает запись с полем component.
func Component(name string) *logrus.Entry {
	return L().WithField("component", name)
}
