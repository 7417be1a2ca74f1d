package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern       = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)

	// Feed URLs carry the API key as a query parameter.
	keyParamPattern = regexp.MustCompile(`[?&]key=[^&\s]+`)
)

// feedKeyFields are the names the feed API key is logged under by the
// config and client packages.
var feedKeyFields = []string{"api_key", "apiKey", "apikey", "APIKey"}

// credentialFields cover headers and generic secrets that may reach a log
// line through request logging or config dumps.
var credentialFields = []string{
	"password", "secret", "token", "accessToken", "access_token",
	"refreshToken", "refresh_token", "credential", "credentials",
	"authorization", "auth", "bearer", "cookie", "session",
	"privateKey", "private_key", "secretKey", "secret_key",
}

// DefaultRedactOptions returns the masq options for secret redaction.
// The feed API key is covered both as a field and as a "key=" query
// parameter inside logged URLs.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(feedKeyFields)+len(credentialFields)+6)

	for _, name := range feedKeyFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	for _, name := range credentialFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
		masq.WithRegex(keyParamPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr that redacts with
// DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
