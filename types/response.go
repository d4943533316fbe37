package types

type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

type DocumentListResponse struct {
	Documents []string `json:"documents"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
