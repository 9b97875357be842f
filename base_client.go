package dashboard

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// AuthTokenHeader is the response header the API server may use to hand a
// bearer token to the client.
const AuthTokenHeader = "set-auth-token"

// ClientOptions are optional settings shared by all API clients.
type ClientOptions struct {
	// AllowInsecure skips TLS certificate verification.
	AllowInsecure bool
	// Token supplies the bearer token for requests that don't carry an explicit
	// one.
	Token func() string
	// OnToken receives any token found in an AuthTokenHeader response header.
	OnToken func(string)
	// HTTPClient replaces the default client. Its cookie jar is left alone.
	HTTPClient *http.Client
}

type baseClient struct {
	apiAddress string
	tokenFn    func() string
	onToken    func(string)
	httpClient *http.Client
}

func newBaseClient(apiAddress string, opts *ClientOptions) *baseClient {
	if opts == nil {
		opts = &ClientOptions{}
	}
	b := &baseClient{
		apiAddress: strings.TrimSuffix(apiAddress, "/"),
		tokenFn:    opts.Token,
		onToken:    opts.OnToken,
		httpClient: opts.HTTPClient,
	}
	if b.httpClient == nil {
		b.httpClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: opts.AllowInsecure, // nolint: gosec
				},
			},
		}
		// The jar carries cross-origin session cookies between calls, the same
		// way a browser does when credentials are included.
		if jar, err := cookiejar.New(
			&cookiejar.Options{PublicSuffixList: publicsuffix.List},
		); err != nil {
			glog.Errorf("error creating cookie jar: %s", err)
		} else {
			b.httpClient.Jar = jar
		}
	}
	return b
}

// bearerTokenAuthHeaders returns an Authorization header for the given token,
// falling back to the configured token source. No header is returned when no
// token is available.
func (b *baseClient) bearerTokenAuthHeaders(token string) map[string]string {
	if token == "" && b.tokenFn != nil {
		token = b.tokenFn()
	}
	if token == "" {
		return nil
	}
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}

func (b *baseClient) executeAPIRequest(
	ctx context.Context,
	apiReq apiRequest,
) error {
	resp, err := b.submitAPIRequest(ctx, apiReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if apiReq.respObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, apiReq.respObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

func (b *baseClient) submitAPIRequest(
	ctx context.Context,
	apiReq apiRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if apiReq.reqBodyObj != nil {
		switch rb := apiReq.reqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(apiReq.reqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		apiReq.method,
		fmt.Sprintf("%s/%s", b.apiAddress, apiReq.path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			apiReq.method,
			apiReq.path,
		)
	}
	if len(apiReq.queryParams) > 0 {
		q := req.URL.Query()
		for k, v := range apiReq.queryParams {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	for k, v := range apiReq.authHeaders {
		req.Header.Add(k, v)
	}
	for k, v := range apiReq.headers {
		req.Header.Add(k, v)
	}

	glog.V(2).Infof("%s %s", apiReq.method, req.URL.Path)
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}

	if token := AuthTokenFromHeader(resp.Header); token != "" && b.onToken != nil {
		b.onToken(token)
	}

	if apiReq.anyStatus || successful(apiReq.successCode, resp.StatusCode) {
		return resp, nil
	}
	defer resp.Body.Close()

	// HTTP Response code hints at what sort of error might be in the body
	// of the response
	var apiErr error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		apiErr = &ErrAuthentication{}
	case http.StatusForbidden:
		apiErr = &ErrAuthorization{}
	case http.StatusBadRequest:
		apiErr = &ErrBadRequest{}
	case http.StatusNotFound:
		apiErr = &ErrNotFound{}
	case http.StatusConflict:
		apiErr = &ErrConflict{}
	case http.StatusInternalServerError:
		apiErr = &ErrInternalServer{}
	default:
		return nil, errors.Errorf("received %d from API server", resp.StatusCode)
	}
	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading error response body")
	}
	if len(bytes.TrimSpace(bodyBytes)) > 0 {
		if err = json.Unmarshal(bodyBytes, apiErr); err != nil {
			glog.V(2).Infof("error unmarshaling error response body: %s", err)
		}
	}
	return nil, apiErr
}

func successful(successCode int, statusCode int) bool {
	if successCode == 0 {
		return statusCode >= 200 && statusCode < 300
	}
	return statusCode == successCode
}

// AuthTokenFromHeader returns the token carried by the AuthTokenHeader
// response header, regardless of how the server cased the header name. It
// returns an empty string if there is none.
func AuthTokenFromHeader(header http.Header) string {
	if token := header.Get(AuthTokenHeader); token != "" {
		return token
	}
	for name, values := range header {
		if strings.EqualFold(name, AuthTokenHeader) {
			for _, value := range values {
				if value != "" {
					return value
				}
			}
		}
	}
	return ""
}
