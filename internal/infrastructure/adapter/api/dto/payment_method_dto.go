package dto

// SetDefaultRequest is the body of a set-default call
type SetDefaultRequest struct {
	UserID uint64 `json:"user_id" binding:"required"`
}

// RouteInfo describes one API operation in the index document
type RouteInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Operation   string `json:"operation"`
	Description string `json:"description"`
}

// IndexResponse is the root URL response describing the service
type IndexResponse struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Routes  []RouteInfo `json:"routes"`
}

// HealthResponse reports service and database liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
