package uri_test

import (
	"fmt"

	"github.com/ghettovoice/gourl/uri"
)

func ExampleNew() {
	u := uri.New("HTTP://Bücher.example/a%2fb?q=%7Bx%7D", uri.TolerantMode)
	fmt.Println(u.String())
	fmt.Println(string(u.ToEncoded(uri.PrettyDecoded)))
	fmt.Println(u.Query(uri.PrettyDecoded))
	fmt.Println(u.Path(uri.FullyDecoded))
	// Output:
	// http://bücher.example/a%2Fb?q=%7Bx%7D
	// http://xn--bcher-kva.example/a%2Fb?q=%7Bx%7D
	// q={x}
	// /a/b
}

func ExampleURI_Resolved() {
	base := uri.MustParse("http://a/b/c/d;p?q")
	fmt.Println(base.Resolved(uri.MustParse("../g")).String())
	fmt.Println(base.Resolved(uri.MustParse("g?y#s")).String())
	// Output:
	// http://a/b/g
	// http://a/b/c/g?y#s
}

func ExampleURI_ErrorString() {
	u := uri.New("http://example.com:99999/", uri.StrictMode)
	fmt.Println(u.IsValid())
	fmt.Println(u.ErrorString())
	// Output:
	// false
	// invalid port or port number out of range; source was "http://example.com:99999/"; scheme = "http", path = "/"
}

func ExampleQuery() {
	q := uri.NewQuery("a=1&b=x%26y")
	q.Add("c", "1+1=2")
	v, _ := q.Value("b", uri.PrettyDecoded)
	fmt.Println(v)
	fmt.Println(q.Encode(uri.PrettyDecoded))
	// Output:
	// x&y
	// a=1&b=x%26y&c=1+1%3D2
}
