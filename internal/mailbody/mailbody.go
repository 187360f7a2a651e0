// Package mailbody turns raw inbound mail into decoded plaintext bodies.
// Bank notifications arrive base64- or quoted-printable-encoded in legacy
// Cyrillic charsets; the extraction engine expects plain Unicode text, so all
// of that is resolved here.
package mailbody

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Message is the decoded view of one inbound mail.
type Message struct {
	// Sender is the raw From header, lowercased. Kept whole rather than
	// parsed down to the address so that allow-list checks can match display
	// names too.
	Sender string
	// Subject is the raw Subject header.
	Subject string
	// Bodies holds every text/plain part decoded to UTF-8 with LF line
	// endings, in message order.
	Bodies []string
}

// Parse reads a raw RFC 822 message and decodes its plaintext parts.
func Parse(raw io.Reader) (*Message, error) {
	msg, err := mail.ReadMessage(raw)
	if err != nil {
		return nil, fmt.Errorf("reading message: %w", err)
	}

	bodies, err := collectPlainText(
		msg.Header.Get("Content-Type"),
		msg.Header.Get("Content-Transfer-Encoding"),
		msg.Body,
	)
	if err != nil {
		return nil, err
	}

	return &Message{
		Sender:  strings.ToLower(msg.Header.Get("From")),
		Subject: msg.Header.Get("Subject"),
		Bodies:  bodies,
	}, nil
}

// collectPlainText walks a MIME entity and returns its decoded text/plain
// bodies. Non-text parts (HTML alternatives, attachments) are skipped.
func collectPlainText(contentType, cte string, body io.Reader) ([]string, error) {
	if contentType == "" {
		// RFC 2045 default
		contentType = "text/plain; charset=us-ascii"
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("parsing content type %q: %w", contentType, err)
	}

	switch {
	case strings.HasPrefix(mediaType, "multipart/"):
		boundary := params["boundary"]
		if boundary == "" {
			return nil, fmt.Errorf("multipart message without boundary")
		}
		var bodies []string
		mr := multipart.NewReader(body, boundary)
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				return bodies, nil
			}
			if err != nil {
				return nil, fmt.Errorf("reading multipart: %w", err)
			}
			sub, err := collectPlainText(
				part.Header.Get("Content-Type"),
				part.Header.Get("Content-Transfer-Encoding"),
				part,
			)
			if err != nil {
				return nil, err
			}
			bodies = append(bodies, sub...)
		}

	case mediaType == "text/plain":
		text, err := decodeText(body, cte, params["charset"])
		if err != nil {
			return nil, err
		}
		return []string{text}, nil

	default:
		return nil, nil
	}
}

// decodeText reverses the transfer encoding and converts the charset to
// UTF-8. Line endings are normalized to LF.
func decodeText(r io.Reader, cte, charset string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(cte)) {
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	default:
		// 7bit, 8bit, binary or absent: bytes are already literal
	}

	charset = strings.ToLower(strings.TrimSpace(charset))
	switch charset {
	case "", "utf-8", "us-ascii", "7bit", "ascii":
		// already Unicode-compatible
	default:
		enc, err := ianaindex.MIME.Encoding(charset)
		if err != nil || enc == nil {
			return "", fmt.Errorf("unsupported charset %q", charset)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding body: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
