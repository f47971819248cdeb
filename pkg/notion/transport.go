package notion

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// NewHTTPClient returns an HTTP client that authenticates with the
// integration token and retries rate-limited (429) and 5xx responses,
// honouring Retry-After.
func NewHTTPClient(token string, logger *logrus.Entry) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 4
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 10 * time.Second
	rc.Logger = retryLogger{logger}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, rc.StandardClient())
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	client.Timeout = 60 * time.Second
	return client
}

// retryLogger adapts logrus to retryablehttp.LeveledLogger.
type retryLogger struct {
	entry *logrus.Entry
}

func (l retryLogger) fields(keysAndValues []interface{}) *logrus.Entry {
	e := l.entry
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if k, ok := keysAndValues[i].(string); ok {
			e = e.WithField(k, keysAndValues[i+1])
		}
	}
	return e
}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Error(msg)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Debug(msg)
}

func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Debug(msg)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Warn(msg)
}
