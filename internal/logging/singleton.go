package logging

import (
	"sync"
)

var (
	instance  *Logger
	once      sync.Once
	mu        sync.RWMutex
	logConfig *Config
)

// Configure sets the logging configuration.
// This should be called before any logger usage.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
}

// InitLogger configures and builds the process-wide logger in one step.
func InitLogger(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	Configure(config)
	once.Do(func() {})

	mu.Lock()
	instance = logger
	mu.Unlock()
	return nil
}

// GetLogger returns the singleton logger instance.
// If the logger hasn't been initialized yet, it initializes it with the provided config.
// If no config was provided via Configure(), it panics.
func GetLogger() *Logger {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		if logConfig == nil {
			panic("logger configuration not set - call logging.Configure() first")
		}

		var err error
		instance, err = NewLogger(logConfig)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})

	mu.RLock()
	defer mu.RUnlock()
	return instance
}
