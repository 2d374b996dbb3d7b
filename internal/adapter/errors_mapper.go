package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx response into a sentinel error wrapped with
// the server's message and, for validation failures, the rejected fields.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := responseMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

func responseMessage(body []byte) string {
	var parsed models.ValidationErrorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return strings.TrimSpace(string(body))
	}

	if len(parsed.Errors) == 0 {
		return parsed.Message
	}

	fields := make([]string, 0, len(parsed.Errors))
	for _, issue := range parsed.Errors {
		fields = append(fields, issue.Field+" "+issue.Message)
	}
	return fmt.Sprintf("%s (%s)", parsed.Message, strings.Join(fields, "; "))
}
