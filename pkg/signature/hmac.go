// Package signature firma y verifica payloads pequeños con HMAC-SHA256 (webhooks entrantes
// y el parámetro state de OAuth). Verify nunca retorna error: cualquier fallo es false.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/rs/zerolog"
)

// Prefix que algunos proveedores anteponen a la firma en el header (ej. "sha256=abcd...").
const Prefix = "sha256="

// Sign devuelve el HMAC-SHA256 de payload en hexadecimal (minúsculas).
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recalcula la firma y compara en tiempo constante. Firmas con hex inválido o
// longitud distinta a sha256.Size devuelven false.
func Verify(payload []byte, signature, secret string) bool {
	sig := strings.TrimPrefix(strings.TrimSpace(signature), Prefix)
	got, err := hex.DecodeString(sig)
	if err != nil || len(got) != sha256.Size {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(got, mac.Sum(nil))
}

// MissingSecretPolicy comportamiento cuando no hay secreto configurado.
type MissingSecretPolicy int

const (
	// FailClosed rechaza toda petición (por defecto).
	FailClosed MissingSecretPolicy = iota
	// FailOpen acepta toda petición y registra un warning en cada llamada. Solo desarrollo.
	FailOpen
)

// Verifier aplica la política de secreto ausente sobre Verify.
type Verifier struct {
	secret string
	policy MissingSecretPolicy
	log    zerolog.Logger
	source string
}

// NewVerifier construye un verificador para una fuente (ej. "voice_webhook").
func NewVerifier(source, secret string, policy MissingSecretPolicy, log zerolog.Logger) *Verifier {
	return &Verifier{
		secret: secret,
		policy: policy,
		log:    log.With().Str("component", "signature").Str("source", source).Logger(),
		source: source,
	}
}

// Configured true si hay secreto.
func (v *Verifier) Configured() bool { return v.secret != "" }

// Verify valida payload contra la firma recibida.
func (v *Verifier) Verify(payload []byte, signature string) bool {
	if v.secret == "" {
		if v.policy == FailOpen {
			v.log.Warn().Msg("secreto de firma no configurado: petición aceptada sin verificar (fail-open)")
			return true
		}
		v.log.Error().Msg("secreto de firma no configurado: petición rechazada (fail-closed)")
		return false
	}
	ok := Verify(payload, signature, v.secret)
	if !ok {
		v.log.Warn().Int("payload_bytes", len(payload)).Msg("firma inválida")
	}
	return ok
}
