package uri

import "github.com/ghettovoice/gourl/internal/recode"

// ParsingMode selects how input text is interpreted by [New], [URI.SetURL] and the setters.
type ParsingMode uint8

const (
	// TolerantMode repairs percent-encoding irregularities and accepts
	// common mistakes. Structural errors are still recorded.
	TolerantMode ParsingMode = iota
	// StrictMode records an error for every character not permitted by RFC 3986.
	StrictMode
	// DecodedMode treats the input of a component setter as fully decoded text,
	// so every '%' is taken literally. It is not permitted for a full URL or for
	// the user info and authority setters.
	DecodedMode
)

func (m ParsingMode) String() string {
	switch m {
	case TolerantMode:
		return "tolerant"
	case StrictMode:
		return "strict"
	case DecodedMode:
		return "decoded"
	default:
		return "unknown"
	}
}

// FormattingOptions control how components and whole values are rendered.
// The low bits remove parts of the value, the high bits select the percent-encoding of components.
type FormattingOptions uint32

// ComponentFormattingOptions is the subset of [FormattingOptions] meaningful for component getters.
type ComponentFormattingOptions = FormattingOptions

const (
	// PrettyDecoded renders the stored form: printable characters are decoded
	// where decoding does not change the meaning.
	PrettyDecoded FormattingOptions = 0

	EncodeSpaces     = FormattingOptions(recode.EncodeSpaces)
	EncodeUnicode    = FormattingOptions(recode.EncodeUnicode)
	EncodeDelimiters = FormattingOptions(recode.EncodeDelimiters)
	EncodeReserved   = FormattingOptions(recode.EncodeReserved)
	DecodeReserved   = FormattingOptions(recode.DecodeReserved)

	// FullyEncoded renders valid RFC 3986 text with all non-ASCII characters encoded.
	FullyEncoded = FormattingOptions(recode.FullyEncoded)
	// FullyDecoded decodes every percent-encoded sequence. The result may be ambiguous,
	// so it is only accepted by the component getters that return a single component.
	FullyDecoded = FormattingOptions(recode.FullyDecoded)
)

const (
	RemoveScheme    FormattingOptions = 0x1
	RemovePassword  FormattingOptions = 0x2
	RemoveUserInfo                    = RemovePassword | 0x4
	RemovePort      FormattingOptions = 0x8
	RemoveAuthority                   = RemoveUserInfo | RemovePort | 0x10
	RemovePath      FormattingOptions = 0x20
	RemoveQuery     FormattingOptions = 0x40
	RemoveFragment  FormattingOptions = 0x80
	// PreferLocalFile renders a local file value as a plain file system path
	// when it has neither query nor fragment.
	PreferLocalFile       FormattingOptions = 0x200
	StripTrailingSlash    FormattingOptions = 0x400
	RemoveFilename        FormattingOptions = 0x800
	NormalizePathSegments FormattingOptions = 0x1000
)

const componentMask FormattingOptions = 0xFFFF0000

// Has reports whether every bit of flag is set in o.
func (o FormattingOptions) Has(flag FormattingOptions) bool { return o&flag == flag }

func (o FormattingOptions) recode() recode.Options { return recode.Options(o & componentMask) }

// ParseOptions configure [NewWithOptions].
type ParseOptions struct {
	Mode ParsingMode
	// StrictIPv4 rejects the legacy IPv4 shorthand ("127.1", "3232235777")
	// and other all-numeric hosts that are not a dotted quad.
	StrictIPv4 bool
}
