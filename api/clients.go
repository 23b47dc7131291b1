package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"inkwell-cli/auth"
	"inkwell-cli/types"

	"github.com/google/uuid"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second
const uploadReqTimeout = 2 * time.Minute

type Api struct{}

var Client types.ApiClient = (*Api)(nil)

var apiHost string

func init() {
	apiHost = os.Getenv("INKWELL_API_HOST")
	if apiHost == "" {
		if os.Getenv("INKWELL_ENV") == "development" {
			apiHost = "http://localhost:5000/api"
		} else {
			apiHost = "https://inkwell.pub/api"
		}
	}
}

func GetApiHost() string {
	return apiHost
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip attaches the bearer token and a request id for log correlation.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	req.Header.Set("X-Request-Id", uuid.NewString())
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: fastReqTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

// longer timeout for multipart uploads with image attachments
var authenticatedUploadClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: uploadReqTimeout,
}
