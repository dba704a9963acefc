package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nattakit-w/shop-recommender-backend/internal/config"
)

// Setup configures the global logrus logger to write to stdout and a dated
// log file (logs/recommender_YYYYMMDD.log). The file writer is skipped when
// the log directory cannot be created, so the service still runs in
// read-only environments.
func Setup(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	writers := []io.Writer{os.Stdout}
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			log.Warnf("could not create log directory %s: %v", cfg.Dir, err)
		} else {
			name := fmt.Sprintf("recommender_%s.log", time.Now().Format("20060102"))
			f, err := os.OpenFile(filepath.Join(cfg.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				log.Warnf("could not open log file: %v", err)
			} else {
				writers = append(writers, f)
			}
		}
	}
	log.SetOutput(io.MultiWriter(writers...))
}
