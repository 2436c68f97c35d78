package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. InitLogger configures it once at
// startup; packages log through it directly.
var Logger = logrus.New()

// appNameHook prefixes every entry with the binary's name, so the
// server and the seed command stay distinguishable in a shared stream.
type appNameHook struct {
	appName string
}

func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// InitLogger wires output, level and formatting. The level comes from
// LOG_LEVEL and falls back to info when unset or unparseable.
func InitLogger(appName string) {
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		Logger.Warnf("Unknown LOG_LEVEL %q, using info", levelStr)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	Logger.AddHook(&appNameHook{appName: appName})
}
