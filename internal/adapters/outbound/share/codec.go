// Package share encodes manifest text into shareable links. The text is
// flate-compressed and base64url-encoded into a query parameter, so the
// whole input survives inside a URL with no server-side state.
package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Param is the query parameter carrying the compressed manifest text.
const Param = "m"

// Codec implements domain.ShareCodec for a fixed base URL.
type Codec struct {
	baseURL string
}

// New creates a Codec producing links on the given base URL.
func New(baseURL string) *Codec {
	return &Codec{baseURL: baseURL}
}

// EncodeLink compresses text into a link on the codec's base URL.
func (c *Codec) EncodeLink(text string) (string, error) {
	payload, err := Encode(text)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing share base URL: %w", err)
	}
	q := u.Query()
	q.Set(Param, payload)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// DecodeLink extracts and decompresses the share parameter from a link,
// returning the original manifest text exactly.
func (c *Codec) DecodeLink(link string) (string, error) {
	payload, ok := ExtractPayload(link)
	if !ok {
		return "", fmt.Errorf("link carries no %q parameter", Param)
	}
	return Decode(payload)
}

// Encode compresses text into the url-safe payload form.
func Encode(text string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("creating compressor: %w", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return "", fmt.Errorf("compressing share payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compressing share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode.
func Decode(payload string) (string, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decoding share payload: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()

	text, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decompressing share payload: %w", err)
	}
	return string(text), nil
}

// ExtractPayload pulls the share parameter out of a raw URL, checking
// the query first and the fragment second (browser builds of the
// validator historically used the fragment).
func ExtractPayload(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	if p := u.Query().Get(Param); p != "" {
		return p, true
	}

	if u.Fragment != "" {
		frag, err := url.ParseQuery(strings.TrimPrefix(u.Fragment, "?"))
		if err == nil {
			if p := frag.Get(Param); p != "" {
				return p, true
			}
		}
	}

	return "", false
}

// IsShareLink reports whether a raw URL carries a share payload.
func IsShareLink(raw string) bool {
	_, ok := ExtractPayload(raw)
	return ok
}
