package services

import (
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// DefaultHttpClient is used for fetching pages from the web.
var DefaultHttpClient = sync.OnceValue(func() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = logrus.StandardLogger()

	client := rc.StandardClient()
	client.Timeout = 30 * time.Second
	return client
})
