package dor

import "fmt"

// DefaultBody stands in for an empty response body in error messages.
const DefaultBody = "Response from dor-services-app did not contain a body. " +
	"Check the dor-services-app logs for backtraces, and consider adding a rescue_from " +
	"in dor-services-app to provide more details to the client in the future."

// FormatResponseError renders a failed response as "<reason>: <status> (<body>)".
func FormatResponseError(reason string, status int, body string) string {
	if body == "" {
		body = DefaultBody
	}
	return fmt.Sprintf("%s: %d (%s)", reason, status, body)
}
