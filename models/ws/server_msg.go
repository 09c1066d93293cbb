package wsmodels

// ServerMessage is one event pushed to connected recruiter clients.
type ServerMessage struct {
	Time string      `json:"time"`
	Code string      `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}
