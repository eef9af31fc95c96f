package handler

import (
	"net/http"
	"regexp"
	"strings"
)

// The failure contract is deliberately flat: every handler failure is a 400
// with {"error": message}, except login which always answers 401 with a fixed
// message. The typed error kinds exist for internal classification and tests;
// they do not change the status a caller sees.

// opPrefix matches the "pkg.Type.Method: " context prefixes added by %w
// wrapping in the service, repo, and auth layers.
var opPrefix = regexp.MustCompile(`^[a-z][a-z0-9]*\.[A-Za-z]\w*\.\w+: `)

// sentinelPrefixes are the typed-error texts that precede the human-readable
// message once the op prefixes are gone.
var sentinelPrefixes = []string{
	"auth backend error: ",
	"storage backend error: ",
	"validation error: ",
}

// clientMessage reduces a wrapped error chain to the message exposed in the
// response body: op prefixes and sentinel texts are stripped so the caller
// sees the underlying cause ("Invalid login credentials", a driver message,
// "User creation failed") rather than this service's internal call path.
func clientMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		if m := opPrefix.FindString(msg); m != "" {
			msg = msg[len(m):]
			continue
		}
		stripped := false
		for _, p := range sentinelPrefixes {
			if strings.HasPrefix(msg, p) {
				msg = msg[len(p):]
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	if msg == "" {
		return err.Error()
	}
	return msg
}

// writeError emits the flat {"error": message} failure body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
