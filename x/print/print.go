// Package print provides helpers to print values to a writer.
package print

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/effective-security/xjwt/jwt"
)

// JSON prints value to out
func JSON(w io.Writer, value interface{}) {
	b, _ := json.MarshalIndent(value, "", "  ")
	_, _ = w.Write(b)
	_, _ = io.WriteString(w, "\n")
}

// Token prints the decoded token fields to out, one per line. Absent
// optional fields are skipped.
func Token(w io.Writer, t *jwt.Token) {
	fmt.Fprintf(w, "Algorithm: %s\n", t.Algorithm)
	if t.KeyID != "" {
		fmt.Fprintf(w, "KeyID: %s\n", t.KeyID)
	}
	if t.Issuer != "" {
		fmt.Fprintf(w, "Issuer: %s\n", t.Issuer)
	}
	if t.Subject != "" {
		fmt.Fprintf(w, "Subject: %s\n", t.Subject)
	}
	if len(t.Audiences) > 0 {
		fmt.Fprintf(w, "Audiences: %s\n", strings.Join(t.Audiences, ","))
	}
	if t.ID != "" {
		fmt.Fprintf(w, "ID: %s\n", t.ID)
	}
	if t.HasIssuedAt() {
		fmt.Fprintf(w, "IssuedAt: %s\n", unixTime(t.IssuedAt))
	}
	if t.HasNotBefore() {
		fmt.Fprintf(w, "NotBefore: %s\n", unixTime(t.NotBefore))
	}
	if t.HasExpiresAt() {
		fmt.Fprintf(w, "ExpiresAt: %s\n", unixTime(t.ExpiresAt))
	}
	fmt.Fprintf(w, "Signature: %d bytes\n", len(t.Signature))
}

func unixTime(sec uint64) string {
	if sec > math.MaxInt64 {
		return strconv.FormatUint(sec, 10)
	}
	return time.Unix(int64(sec), 0).UTC().Format(time.RFC3339)
}
