package signature_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/lithrlnd12/keyhubcentral/pkg/signature"
)

const testSecret = "whsec_test_1234567890"

func TestSign_VectorConocido(t *testing.T) {
	// RFC 4231, caso 2.
	got := signature.Sign([]byte("what do ya want for nothing?"), "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestSign_Determinista(t *testing.T) {
	p := []byte(`{"call_id":"abc"}`)
	assert.Equal(t, signature.Sign(p, testSecret), signature.Sign(p, testSecret))
	assert.Len(t, signature.Sign(p, testSecret), 64)
}

func TestVerify_RoundTrip(t *testing.T) {
	payloads := [][]byte{nil, []byte(""), []byte("x"), []byte(`{"a":1}`), bytes.Repeat([]byte("z"), 4096)}
	secrets := []string{"", "k", testSecret, "ñandú-🔑"}
	for _, p := range payloads {
		for _, s := range secrets {
			assert.True(t, signature.Verify(p, signature.Sign(p, s), s))
		}
	}
}

func TestVerify_DetectaManipulacion(t *testing.T) {
	p := []byte(`{"amount":100}`)
	sig := signature.Sign(p, testSecret)

	assert.False(t, signature.Verify(p, sig, testSecret+"x"), "secreto distinto")
	assert.False(t, signature.Verify([]byte(`{"amount":900}`), sig, testSecret), "payload alterado")
}

func TestVerify_EntradaMalformadaRetornaFalse(t *testing.T) {
	p := []byte("payload")
	sig := signature.Sign(p, testSecret)
	cases := []string{
		"",
		"not-a-valid-hex-signature",
		sig[:10],
		sig + "00",
		strings.ToUpper(sig[:63]) + "g",
	}
	for _, c := range cases {
		assert.NotPanics(t, func() {
			assert.Falsef(t, signature.Verify(p, c, testSecret), "firma %q", c)
		})
	}
}

func TestVerify_AceptaPrefijoYMayusculas(t *testing.T) {
	p := []byte("payload")
	sig := signature.Sign(p, testSecret)
	assert.True(t, signature.Verify(p, signature.Prefix+sig, testSecret))
	assert.True(t, signature.Verify(p, strings.ToUpper(sig), testSecret))
}

func TestVerifier_SinSecretoFailClosed(t *testing.T) {
	var buf bytes.Buffer
	v := signature.NewVerifier("voice_webhook", "", signature.FailClosed, zerolog.New(&buf))
	assert.False(t, v.Configured())
	assert.False(t, v.Verify([]byte("x"), "whatever"))
	assert.Contains(t, buf.String(), "fail-closed")
}

func TestVerifier_SinSecretoFailOpenRegistraWarning(t *testing.T) {
	var buf bytes.Buffer
	v := signature.NewVerifier("voice_webhook", "", signature.FailOpen, zerolog.New(&buf))
	assert.True(t, v.Verify([]byte("x"), ""))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "voice_webhook")
}

func TestVerifier_ConSecreto(t *testing.T) {
	v := signature.NewVerifier("voice_webhook", testSecret, signature.FailOpen, zerolog.Nop())
	p := []byte("body")
	assert.True(t, v.Verify(p, signature.Sign(p, testSecret)))
	assert.False(t, v.Verify(p, signature.Sign(p, "otro")), "con secreto configurado la política no aplica")
}
