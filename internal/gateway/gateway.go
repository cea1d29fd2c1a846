// Package gateway builds payment references and checkout URLs for the
// hosted payment page and verifies signed webhook payloads.
package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// SignatureHeader carries the hex HMAC-SHA512 of the raw webhook body.
const SignatureHeader = "X-Paystack-Signature"

var minorUnitsPerMajor = decimal.NewFromInt(100)

var fees = map[domain.PackageType]decimal.Decimal{
	domain.PackageBasic:    decimal.NewFromInt(15000),
	domain.PackagePremium:  decimal.NewFromInt(30000),
	domain.PackageExtended: decimal.NewFromInt(45000),
}

// Fee returns the listing fee of a package tier in the listing currency.
func Fee(tier domain.PackageType) (decimal.Decimal, error) {
	fee, ok := fees[tier]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown package type %q", domain.ErrValidation, tier)
	}
	return fee, nil
}

// NewReference returns a reference of the form TRN_<unix millis>_<0..999>.
func NewReference(now time.Time) string {
	return fmt.Sprintf("TRN_%d_%d", now.UnixMilli(), rand.IntN(1000))
}

// ToMinorUnits converts a major-unit amount to the gateway's integer minor
// unit (kobo, cents). Fractions of a minor unit are rejected.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Mul(minorUnitsPerMajor)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %s has sub-minor precision", domain.ErrValidation, amount)
	}
	return minor.IntPart(), nil
}

type Config struct {
	CheckoutURL   string
	PublicBaseURL string
	CallbackPath  string
	Secret        string
}

type Gateway struct {
	cfg Config
}

func New(cfg Config) *Gateway {
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return &Gateway{cfg: cfg}
}

// PaymentInitURL is the local redirector URL handed back to the organizer
// after submission.
func (g *Gateway) PaymentInitURL(reference string, amount decimal.Decimal, email, eventID string) string {
	q := url.Values{}
	q.Set("reference", reference)
	q.Set("amount", amount.StringFixed(2))
	q.Set("email", email)
	q.Set("event_id", eventID)
	return g.cfg.PublicBaseURL + "/payment?" + q.Encode()
}

// CheckoutURL builds the hosted payment page URL. The amount is sent in
// minor units and the callback carries the event id back to the site.
func (g *Gateway) CheckoutURL(reference string, amount decimal.Decimal, email, eventID string) (string, error) {
	minor, err := ToMinorUnits(amount)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(g.cfg.CheckoutURL)
	if err != nil {
		return "", fmt.Errorf("parse checkout url: %w", err)
	}

	callback := url.Values{}
	callback.Set("event_id", eventID)

	q := u.Query()
	q.Set("reference", reference)
	q.Set("amount", fmt.Sprintf("%d", minor))
	q.Set("email", email)
	q.Set("callback_url", g.cfg.PublicBaseURL+g.cfg.CallbackPath+"?"+callback.Encode())
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Verify checks the webhook signature against the shared secret in
// constant time.
func (g *Gateway) Verify(body []byte, signature string) error {
	if g.cfg.Secret == "" || signature == "" {
		return domain.ErrInvalidSignature
	}
	want, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return domain.ErrInvalidSignature
	}
	if !hmac.Equal(mac(g.cfg.Secret, body), want) {
		return domain.ErrInvalidSignature
	}
	return nil
}

// Sign returns the hex signature the gateway attaches to body.
func Sign(secret string, body []byte) string {
	return hex.EncodeToString(mac(secret, body))
}

func mac(secret string, body []byte) []byte {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write(body)
	return h.Sum(nil)
}
