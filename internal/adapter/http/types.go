package http

// HealthResponse confirms the service process is running.
type HealthResponse struct {
	Message     string `json:"message" example:"Server is running!"`
	Timestamp   string `json:"timestamp" example:"2024-01-01T12:00:00Z"`
	Environment string `json:"environment" example:"development"`
	Version     string `json:"version,omitempty" example:"1.0.0"`
}

// MemoryUsage carries MB-denominated process memory figures.
type MemoryUsage struct {
	RSS      string `json:"rss" example:"42.17 MB"`
	HeapUsed string `json:"heapUsed" example:"12.03 MB"`
}

// InfoResponse is derived from runtime introspection at request time.
type InfoResponse struct {
	AppName     string      `json:"appName" example:"backend-scaffold"`
	GoVersion   string      `json:"goVersion" example:"go1.24.7"`
	Platform    string      `json:"platform" example:"linux/amd64"`
	Uptime      float64     `json:"uptime" example:"123.4"`
	MemoryUsage MemoryUsage `json:"memoryUsage"`
}

// CacheProbeResponse reports a successful cache connectivity check.
type CacheProbeResponse struct {
	Message   string `json:"message" example:"Cache connection successful"`
	Cache     string `json:"cache" example:"Redis"`
	Timestamp string `json:"timestamp" example:"2024-01-01T12:00:00Z"`
}

// ErrorResponse is the single failure shape: 404s carry path and method,
// 500s carry a message.
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Message string `json:"message,omitempty" example:"connection refused"`
	Path    string `json:"path,omitempty" example:"/missing"`
	Method  string `json:"method,omitempty" example:"GET"`
}
