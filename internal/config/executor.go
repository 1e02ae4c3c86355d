package config

// ExecutorConfig points at the Piston-compatible execution backend
type ExecutorConfig struct {
	Url string
}

func NewExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		Url: getEnv("EXECUTOR_URL", "https://emkc.org/api/v2/piston/execute"),
	}
}
