// Package ace adapts [golang.org/x/net/idna] to the host classifier.
package ace

//go:generate errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/ghettovoice/gourl/internal/errorutil"
)

const (
	ErrInvalidName  errorutil.Error = "invalid domain name"
	ErrInvalidLabel errorutil.Error = "invalid domain label"
)

// Encoder converts registered names with the IDNA lookup profile.
// The zero value is not usable, use [New] or [Default].
type Encoder struct {
	profile *idna.Profile
}

// New creates an Encoder. Underscores are permitted in labels, otherwise labels follow the STD3 rules.
func New() *Encoder {
	return &Encoder{
		profile: idna.New(
			idna.MapForLookup(),
			idna.Transitional(false),
			idna.StrictDomainName(false),
		),
	}
}

// Default is the Encoder used by the uri package.
var Default = New()

// Normalize validates name and returns its display form: mapped through IDNA,
// lower-cased, with ACE labels converted back to Unicode.
// A leading dot and empty labels are rejected, one trailing dot is kept.
func (e *Encoder) Normalize(name string) (string, error) {
	a, err := e.toASCII(name)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	u, err := e.profile.ToUnicode(a)
	if err != nil {
		return a, nil
	}
	return u, nil
}

// ToASCII returns the ACE form of name.
func (e *Encoder) ToASCII(name string) (string, error) {
	return errtrace.Wrap2(e.toASCII(name))
}

func (e *Encoder) toASCII(name string) (string, error) {
	if name == "" || name[0] == '.' {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, "%q", name))
	}

	a, err := e.profile.ToASCII(name)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, err))
	}
	a = strings.ToLower(a)

	if _, ok := dns.IsDomainName(a); !ok {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, "%q", a))
	}
	for label := range strings.SplitSeq(strings.TrimSuffix(a, "."), ".") {
		if err := checkLabel(label); err != nil {
			return "", errtrace.Wrap(err)
		}
	}
	return a, nil
}

// checkLabel applies the STD3 letter-digit-hyphen rule, extended with '_'.
func checkLabel(label string) error {
	if label == "" || label[0] == '-' || label[len(label)-1] == '-' {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidLabel, "%q", label))
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-' || c == '_' {
			continue
		}
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidLabel, "%q", label))
	}
	return nil
}
