package api

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// emptyBodyDigest is the base64 SHA-256 of an empty body. The gateway
// expects this exact value on requests without a payload.
const emptyBodyDigest = "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="

// encryptHeader is the vendor header carrying the app ID. It is part of
// the signed header set.
const encryptHeader = "hi-params-encrypt"

// gmtLayout matches the Date header format the gateway verifies against
// the signature.
const gmtLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// signatureInput builds the string the request signature is computed over.
// The gateway signs the request target, the Date header, and the app ID
// header, in that order, each terminated by a newline.
func signatureInput(appID, method, requestTarget, gmtDate string) string {
	var b strings.Builder
	b.WriteString(appID)
	b.WriteString("\n")
	b.WriteString(method)
	b.WriteString(" ")
	b.WriteString(requestTarget)
	b.WriteString("\n")
	b.WriteString("date: ")
	b.WriteString(gmtDate)
	b.WriteString("\n")
	b.WriteString(encryptHeader)
	b.WriteString(": ")
	b.WriteString(appID)
	b.WriteString("\n")
	return b.String()
}

// signHMACSHA256 returns the base64 HMAC-SHA256 of input under secret.
func signHMACSHA256(secret, input string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(input))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// authorizationHeader formats the Signature authorization header.
func authorizationHeader(appID, signature string) string {
	return fmt.Sprintf(
		`Signature signature="%s", keyId="%s",algorithm="hmac-sha256", headers="@request-target date %s"`,
		signature, appID, encryptHeader,
	)
}

// bodyDigest returns the Digest header value for a request body.
func bodyDigest(body []byte) string {
	if len(body) == 0 {
		return "SHA-256=" + emptyBodyDigest
	}
	sum := sha256.Sum256(body)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
}

// gmtDate formats t as the gateway's Date header, always in UTC.
func gmtDate(t time.Time) string {
	return t.UTC().Format(gmtLayout)
}

// requestTarget extracts the path and query from a full URL, which is what
// the signature covers instead of the absolute URL.
func requestTarget(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return u.RequestURI(), nil
}

// randomHex returns n random bytes hex encoded.
func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// randString produces the per-request randStr system parameter, an md5 hex
// of a unique seed.
func randString(now time.Time) string {
	seed := randomHex(16) + fmt.Sprintf("%d", now.UnixMilli())
	sum := md5.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// newSourceID generates the per-process sourceId: a fixed vendor prefix
// followed by an md5 hex of a unique seed.
func newSourceID(now time.Time) string {
	seed := randomHex(16) + fmt.Sprintf("%d", now.UnixMilli())
	sum := md5.Sum([]byte(seed))
	return "td001002000" + hex.EncodeToString(sum[:])
}
