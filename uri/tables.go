package uri

import "github.com/ghettovoice/gourl/internal/recode"

var (
	decode = recode.DecodeChar
	encode = recode.EncodeChar
)

// Components are stored with the delimiters of other components decoded.
// Each slice below is a suffix of the user name table for the same context,
// a later component shares the rules of the earlier one minus its own delimiters.
var (
	userNameInIsolation = []recode.Modification{
		decode(':'),
		decode('@'),
		decode(']'),
		decode('['),
		decode('/'),
		decode('?'),
		decode('#'),

		decode('"'),
		decode('<'),
		decode('>'),
		decode('^'),
		decode('\\'),
		decode('|'),
		decode('{'),
		decode('}'),
	}
	passwordInIsolation = userNameInIsolation[1:]
	pathInIsolation     = userNameInIsolation[5:]
	queryInIsolation    = userNameInIsolation[6:]
	fragmentInIsolation = userNameInIsolation[6:]

	userNameInUserInfo = append([]recode.Modification{encode(':')}, userNameInIsolation[1:]...)
	passwordInUserInfo = userNameInUserInfo[1:]

	userNameInAuthority = append([]recode.Modification{
		encode(':'),
		encode('@'),
		encode(']'),
		encode('['),
	}, userNameInIsolation[4:]...)
	passwordInAuthority = userNameInAuthority[1:]

	userNameInURL = []recode.Modification{
		encode(':'),
		encode('@'),
		encode(']'),
		encode('['),
		encode('/'),
		encode('?'),
		encode('#'),
	}
	passwordInURL = userNameInURL[1:]
	pathInURL     = userNameInURL[5:]
	queryInURL    = userNameInURL[6:]
	fragmentInURL = userNameInURL[6:]
)

// target is where a component is being rendered to.
type target uint8

const (
	targetComponent target = iota
	targetUserInfo
	targetAuthority
	targetURL
)

func userInfoTables(opts FormattingOptions, to target) (userMods, passMods []recode.Modification) {
	if opts&EncodeDelimiters != 0 {
		return userNameInURL, passwordInURL
	}
	switch to {
	case targetUserInfo:
		return userNameInUserInfo, passwordInUserInfo
	case targetAuthority:
		return userNameInAuthority, passwordInAuthority
	default:
		return userNameInURL, passwordInURL
	}
}

// recodeStored renders a stored component. The stored form is already pretty decoded.
func recodeStored(val string, opts FormattingOptions, mods []recode.Modification) string {
	if opts&componentMask == PrettyDecoded {
		return val
	}
	return recode.String(val, opts.recode(), mods)
}

// recodeFromUser converts setter and parser input to the stored form.
func recodeFromUser(val string, mods []recode.Modification) string {
	return recode.String(val, 0, mods)
}
