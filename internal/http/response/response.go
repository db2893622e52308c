package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError classifies err and writes the error envelope.
func RespondAPIError(c *gin.Context, err error) {
	record(c, err)
	ae := Classify(err)
	c.JSON(ae.Status, ErrorEnvelope{
		Error: APIError{
			Message: PublicMessage(ae),
			Code:    ae.Code,
		},
	})
}

// RespondPlainError writes {"error": "<message>"} for routes whose clients
// expect a bare string.
func RespondPlainError(c *gin.Context, err error) {
	record(c, err)
	ae := Classify(err)
	c.JSON(ae.Status, gin.H{"error": PublicMessage(ae)})
}

// record attaches err to the request so the request logger reports it.
func record(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
}

var serverMessages = map[string]string{
	"graph_unavailable":         "knowledge graph is unavailable",
	"graph_query_failed":        "knowledge graph query failed",
	"upstream_unavailable":      "open data service is unavailable",
	"generation_failed":         "text generation failed",
	"generation_not_configured": "API key is not configured",
}

// PublicMessage is the client-facing text for ae. Server-side failures get a
// fixed message per code; the wrapped error stays in the logs.
func PublicMessage(ae *apierr.Error) string {
	if ae == nil {
		return "unknown error"
	}
	if ae.Status >= http.StatusInternalServerError {
		if msg, ok := serverMessages[ae.Code]; ok {
			return msg
		}
		return "internal server error"
	}
	if ae.Err != nil {
		return ae.Err.Error()
	}
	if ae.Code != "" {
		return ae.Code
	}
	return "unknown error"
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
