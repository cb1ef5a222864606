package types

const (
	// DefaultBackendURL is the question endpoint of the reference backend
	DefaultBackendURL = "http://127.0.0.1:5000/perguntar"

	// DefaultBackendAddress is where the reference backend listens
	DefaultBackendAddress = "http://127.0.0.1:5000/"

	// ProbeQuestion is the placeholder question sent by the connectivity probe
	ProbeQuestion = "teste"
)

// QuestionRequest is the body POSTed to the question endpoint
type QuestionRequest struct {
	Question string `json:"pergunta"`
}

// AnswerPayload represents the question endpoint response.
// Only Answer is used for rendering; the other fields are optional
// extras some backends send along.
type AnswerPayload struct {
	Answer      string     `json:"resposta,omitempty"`
	Citations   []Citation `json:"citacoes,omitempty"`
	FinalAction string     `json:"acao_final,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// Citation points at the document passage an answer was built from
type Citation struct {
	Document string `json:"documento"`
	Page     int    `json:"pagina"`
	Excerpt  string `json:"trecho"`
}

// HasAnswer reports whether the payload carries a non-empty answer
func (p *AnswerPayload) HasAnswer() bool {
	return p != nil && p.Answer != ""
}

// ErrorResponse represents an error response of the web host
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
