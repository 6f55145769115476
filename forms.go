package dockerfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ExecForm returns the JSON-array payload used by the exec form of RUN, CMD,
// ENTRYPOINT, SHELL and VOLUME:
//
//	ExecForm("/bin/sh", "-c") == `["/bin/sh", "-c"]`
func ExecForm(args ...string) string {
	var (
		sb  strings.Builder
		buf bytes.Buffer
	)
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	sb.WriteByte('[')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		buf.Reset()
		// Encoding a string cannot fail.
		_ = enc.Encode(arg)
		sb.Write(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ShellForm joins args into a shell-form payload, quoting each argument for a
// POSIX shell where needed. It fails for arguments no POSIX shell word can
// hold, such as strings containing NUL bytes.
func ShellForm(args ...string) (string, error) {
	words := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			return "", fmt.Errorf("quote argument %d: %w", i, err)
		}
		words[i] = q
	}
	return strings.Join(words, " "), nil
}
