package mailbody

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlain(t *testing.T) {
	raw := "From: Alfa-Bank <Alert@Alfabank.ru>\r\n" +
		"To: parse@app.example.com\r\n" +
		"Subject: Card operation\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Карта 1234\r\n" +
		"Сумма:500.00 RUB\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "alfa-bank <alert@alfabank.ru>", msg.Sender)
	assert.Equal(t, "Card operation", msg.Subject)
	require.Len(t, msg.Bodies, 1)
	// CRLF normalized to LF
	assert.Equal(t, "Карта 1234\nСумма:500.00 RUB\n", msg.Bodies[0])
}

func TestParseQuotedPrintable(t *testing.T) {
	raw := "From: bank@example.com\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"=D0=A2=D0=B5=D1=81=D1=82\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, msg.Bodies, 1)
	assert.Equal(t, "Тест\n", msg.Bodies[0])
}

func TestParseBase64LegacyCharset(t *testing.T) {
	// "Тест" in windows-1251 (d2 e5 f1 f2), base64-encoded
	raw := "From: bank@example.com\r\n" +
		"Content-Type: text/plain; charset=windows-1251\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"\r\n" +
		"0uXx8g==\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, msg.Bodies, 1)
	assert.Equal(t, "Тест", msg.Bodies[0])
}

func TestParseMultipartKeepsOnlyPlainText(t *testing.T) {
	raw := "From: bank@example.com\r\n" +
		"Content-Type: multipart/alternative; boundary=frontier\r\n" +
		"\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"plain body\r\n" +
		"--frontier\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<p>html body</p>\r\n" +
		"--frontier--\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, msg.Bodies, 1)
	assert.Equal(t, "plain body", msg.Bodies[0])
}

func TestParseMissingContentTypeDefaultsToPlain(t *testing.T) {
	raw := "From: bank@example.com\r\n" +
		"\r\n" +
		"implicit plain text\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, msg.Bodies, 1)
	assert.Equal(t, "implicit plain text\n", msg.Bodies[0])
}

func TestParseErrors(t *testing.T) {
	t.Run("not a mail message", func(t *testing.T) {
		_, err := Parse(strings.NewReader("no headers here"))
		assert.Error(t, err)
	})

	t.Run("unknown charset", func(t *testing.T) {
		raw := "From: bank@example.com\r\n" +
			"Content-Type: text/plain; charset=x-no-such-charset\r\n" +
			"\r\n" +
			"body\r\n"
		_, err := Parse(strings.NewReader(raw))
		assert.Error(t, err)
	})
}
