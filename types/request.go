package types

type ChatRequest struct {
	Question string `json:"question"`
	Filename string `json:"filename"`
}
