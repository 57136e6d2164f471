package http

type ErrorResponse struct {
	Error string `json:"error"`
}

type SaveRecordingResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}
