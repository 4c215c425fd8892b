// Package sigv4 computes AWS Signature Version 4 request signatures as
// required by the Selling Partner API.
//
// Sign is a pure function: identical inputs always produce an identical
// SignedRequest, and it performs no I/O. SignHTTP applies the result to an
// outgoing *http.Request.
package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const (
	// Algorithm is the signing algorithm identifier.
	Algorithm = "AWS4-HMAC-SHA256"

	// DefaultRegion and ServiceExecuteAPI are the scope SP-API requests are
	// signed for regardless of the regional endpoint.
	DefaultRegion     = "us-east-1"
	ServiceExecuteAPI = "execute-api"

	amzDateFormat = "20060102T150405Z"

	headerAmzDate          = "x-amz-date"
	headerAmzSecurityToken = "x-amz-security-token"
)

var (
	// ErrMissingMethod is returned when the request has no HTTP method.
	ErrMissingMethod = errors.New("sigv4: request method is required")
	// ErrMissingURL is returned when the request URL is empty or has no host.
	ErrMissingURL = errors.New("sigv4: request url with host is required")
)

// Headers never included in the signature. Proxies and the transport may
// rewrite them.
var ignoredHeaders = map[string]struct{}{
	"authorization":     {},
	"user-agent":        {},
	"x-amzn-trace-id":   {},
	"expect":            {},
	"transfer-encoding": {},
}

// Request is the input to Sign.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// SignedRequest holds every intermediate value of a signature so callers
// and tests can inspect how it was derived.
type SignedRequest struct {
	Method               string
	CanonicalURI         string
	CanonicalQueryString string
	CanonicalHeaders     string
	SignedHeaders        string
	PayloadHash          string
	Signature            string
	AmzDate              string
	CredentialScope      string
}

// CanonicalRequest returns the canonical request string that was hashed.
func (s SignedRequest) CanonicalRequest() string {
	return strings.Join([]string{
		s.Method,
		s.CanonicalURI,
		s.CanonicalQueryString,
		s.CanonicalHeaders,
		s.SignedHeaders,
		s.PayloadHash,
	}, "\n")
}

// StringToSign returns the string the signature was computed over.
func (s SignedRequest) StringToSign() string {
	return stringToSign(s.AmzDate, s.CredentialScope, s.CanonicalRequest())
}

// Authorization formats the Authorization header value for accessKeyID.
func (s SignedRequest) Authorization(accessKeyID string) string {
	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		Algorithm, accessKeyID, s.CredentialScope, s.SignedHeaders, s.Signature)
}

// Sign computes the SigV4 signature of req at time t.
func Sign(req Request, secret, region, service string, t time.Time) (SignedRequest, error) {
	if req.Method == "" {
		return SignedRequest{}, ErrMissingMethod
	}
	if req.URL == "" {
		return SignedRequest{}, ErrMissingURL
	}
	u, err := url.Parse(req.URL)
	if err != nil {
		return SignedRequest{}, fmt.Errorf("sigv4: parsing url: %w", err)
	}
	if u.Host == "" {
		return SignedRequest{}, ErrMissingURL
	}

	amzDate := t.UTC().Format(amzDateFormat)
	dateStamp := amzDate[:8]

	headers := make(map[string][]string, len(req.Header)+2)
	for name, values := range req.Header {
		lname := strings.ToLower(name)
		headers[lname] = append(headers[lname], values...)
	}
	if _, ok := headers["host"]; !ok {
		headers["host"] = []string{u.Host}
	}
	headers[headerAmzDate] = []string{amzDate}

	canonicalHeaders, signedHeaders := canonicalizeHeaders(headers)

	sr := SignedRequest{
		Method:               strings.ToUpper(req.Method),
		CanonicalURI:         canonicalURI(u.EscapedPath()),
		CanonicalQueryString: canonicalQuery(u.Query()),
		CanonicalHeaders:     canonicalHeaders,
		SignedHeaders:        signedHeaders,
		PayloadHash:          hashHex(req.Body),
		AmzDate:              amzDate,
		CredentialScope:      strings.Join([]string{dateStamp, region, service, "aws4_request"}, "/"),
	}

	key := signingKey(secret, dateStamp, region, service)
	sr.Signature = hex.EncodeToString(hmacSHA256(key, []byte(sr.StringToSign())))

	return sr, nil
}

// SignHTTP signs req in place with creds, setting x-amz-date, the session
// token header when creds carries one, and Authorization. body must be the
// exact bytes that will be sent.
func SignHTTP(req *http.Request, body []byte, creds aws.Credentials, region, service string, t time.Time) error {
	if req == nil || req.URL == nil {
		return ErrMissingURL
	}

	if creds.SessionToken != "" {
		req.Header.Set(headerAmzSecurityToken, creds.SessionToken)
	}

	header := make(http.Header, len(req.Header))
	for name, values := range req.Header {
		if _, skip := ignoredHeaders[strings.ToLower(name)]; skip {
			continue
		}
		header[name] = values
	}
	if req.Host != "" {
		header.Set("Host", req.Host)
	}

	sr, err := Sign(Request{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: header,
		Body:   body,
	}, creds.SecretAccessKey, region, service, t)
	if err != nil {
		return err
	}

	req.Header.Set(headerAmzDate, sr.AmzDate)
	req.Header.Set("Authorization", sr.Authorization(creds.AccessKeyID))
	return nil
}

func stringToSign(amzDate, scope, canonicalRequest string) string {
	return strings.Join([]string{
		Algorithm,
		amzDate,
		scope,
		hashHex([]byte(canonicalRequest)),
	}, "\n")
}

func signingKey(secret, dateStamp, region, service string) []byte {
	k := hmacSHA256([]byte("AWS4"+secret), []byte(dateStamp))
	k = hmacSHA256(k, []byte(region))
	k = hmacSHA256(k, []byte(service))
	return hmacSHA256(k, []byte("aws4_request"))
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func hashHex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// canonicalURI encodes the path as sent on the wire a second time, which is
// what every service except S3 expects.
func canonicalURI(path string) string {
	if path == "" {
		return "/"
	}
	return escape(path, true)
}

func canonicalQuery(q url.Values) string {
	type pair struct{ k, v string }
	pairs := make([]pair, 0, len(q))
	for k, vs := range q {
		ek := escape(k, false)
		for _, v := range vs {
			pairs = append(pairs, pair{ek, escape(v, false)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k != pairs[j].k {
			return pairs[i].k < pairs[j].k
		}
		return pairs[i].v < pairs[j].v
	})

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.k + "=" + p.v
	}
	return strings.Join(parts, "&")
}

func canonicalizeHeaders(headers map[string][]string) (canonical, signed string) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		values := make([]string, len(headers[name]))
		for i, v := range headers[name] {
			values[i] = trimAll(v)
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strings.Join(values, ","))
		b.WriteByte('\n')
	}
	return b.String(), strings.Join(names, ";")
}

// trimAll trims v and collapses runs of spaces to one.
func trimAll(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// escape percent-encodes s per RFC 3986, leaving only unreserved
// characters (and '/' when keepSlash is set) untouched.
func escape(s string, keepSlash bool) string {
	const hexUpper = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || (keepSlash && c == '/') {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexUpper[c>>4])
		b.WriteByte(hexUpper[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
