// Package uri parses, validates, normalizes and resolves URLs and relative references
// according to RFC 3986.
//
// # Overview
//
// A [URI] holds the components of a parsed URL: scheme, user name, password, host, port,
// path, query and fragment. Components are canonicalized while being stored:
//
//   - the scheme is lower-cased;
//   - percent-encoding is normalized, hex digits are upper-cased and characters that
//     do not need encoding are decoded;
//   - IPv4 addresses are written as a dotted quad, IPv6 addresses in the RFC 5952 form;
//   - registered names are mapped through IDNA and stored in their Unicode form.
//
// Every component is rendered on demand with [FormattingOptions], from the pretty decoded
// form meant for humans to the fully encoded RFC 3986 form meant for the wire:
//
//	u := uri.New("HTTP://Bücher.example/a%2fb?q=%7Bx%7D", uri.TolerantMode)
//	u.String()                    // http://bücher.example/a%2Fb?q=%7Bx%7D
//	string(u.ToEncoded(0))        // http://xn--bcher-kva.example/a%2Fb?q=%7Bx%7D
//	u.Query(uri.PrettyDecoded)    // q={x}
//	u.Path(uri.FullyDecoded)      // /a/b
//
// # Parsing modes
//
// [TolerantMode] repairs what can be repaired: stray '%' signs are encoded,
// forbidden characters are encoded, percent-encoded host names are decoded.
// [StrictMode] records an error at the first character not permitted by RFC 3986.
// [DecodedMode] is accepted by the component setters and takes the input literally.
//
// Parsing never fails: the components are filled best effort and the first error found
// is kept in the value. [URI.IsValid], [URI.Err] and [URI.ErrorString] report it:
//
//	u, err := uri.Parse("http://example.com:99999/", uri.StrictMode)
//	if errors.Is(err, uri.ErrInvalidPort) {
//	    // ...
//	}
//
// The error slot holds one error. The first error of a parse wins, every setter call
// clears the slot before it runs.
//
// # Resolution
//
// [URI.Resolved] resolves a reference against a base following RFC 3986 section 5.2,
// dot segments are removed from the result:
//
//	base := uri.MustParse("http://a/b/c/d;p?q")
//	base.Resolved(uri.MustParse("../g")).String() // http://a/b/g
//
// # Queries
//
// [Query] splits a query into key and value pairs with configurable delimiters
// and builds a query back from pairs, encoding the delimiters found in keys and values.
//
// # Local files
//
// [FromLocalFile] and [URI.ToLocalFile] convert between "file" URLs and file system paths.
//
// # Thread Safety
//
// A URI is not safe for concurrent modification. Concurrent reads are safe,
// use [URI.Clone] to hand a copy to another goroutine.
package uri
