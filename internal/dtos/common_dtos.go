package dtos

type HealthCheckResponse struct {
	Status string `json:"status"`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
