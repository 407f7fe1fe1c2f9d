package uri

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/recode"
	"github.com/ghettovoice/gourl/internal/util"
)

const (
	DefaultQueryValueDelimiter = '='
	DefaultQueryPairDelimiter  = '&'
)

// QueryItem is a key and value pair of a query.
type QueryItem struct {
	Key   string
	Value string
	// NoValue marks a key written without the value delimiter ("a" in "a&b=")
	// as opposed to a key with an empty value ("b").
	NoValue bool
}

// Query is an ordered list of key and value pairs built from or rendered to the query of a URL.
// Keys may repeat. The zero value is an empty query with the default delimiters.
type Query struct {
	items     []QueryItem
	valDelim  byte
	pairDelim byte
}

// NewQuery parses s with the default delimiters.
func NewQuery(s string) *Query {
	q := new(Query)
	q.SetQuery(s)
	return q
}

// ParseQuery returns the query of u split into items.
func ParseQuery(u *URI) *Query {
	q := new(Query)
	if u.HasQuery() {
		q.SetQuery(u.Query(PrettyDecoded))
	}
	return q
}

// Delimiters returns the value and the pair delimiters.
func (q *Query) Delimiters() (value, pair byte) {
	value, pair = DefaultQueryValueDelimiter, DefaultQueryPairDelimiter
	if q.valDelim != 0 {
		value = q.valDelim
	}
	if q.pairDelim != 0 {
		pair = q.pairDelim
	}
	return value, pair
}

// SetDelimiters changes the value and the pair delimiters used by the following calls.
// Only distinct sub-delimiters are accepted.
func (q *Query) SetDelimiters(value, pair byte) error {
	if !grammar.IsSubDelim(value) || !grammar.IsSubDelim(pair) || value == pair {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"query delimiters must be distinct sub-delims, got %q and %q", value, pair))
	}
	q.valDelim, q.pairDelim = value, pair
	return nil
}

// storageMods are the actions used to store keys and values:
// the delimiters and '#' are kept decoded.
func (q *Query) storageMods() []recode.Modification {
	v, p := q.Delimiters()
	return []recode.Modification{decode(p), decode(v), decode('#')}
}

func (q *Query) fromUser(s string, mods []recode.Modification) string {
	return recode.String(s, recode.DecodeReserved, mods)
}

// SetQuery replaces the items with the result of splitting s.
// A pair without the value delimiter gets no value, empty pairs are kept as empty keys.
func (q *Query) SetQuery(s string) {
	q.items = q.items[:0]
	if s == "" {
		return
	}

	v, p := q.Delimiters()
	mods := q.storageMods()
	for pair := range strings.SplitSeq(s, string(p)) {
		key, val, found := strings.Cut(pair, string(v))
		it := QueryItem{Key: q.fromUser(key, mods), NoValue: !found}
		if found {
			it.Value = q.fromUser(val, mods)
		}
		q.items = append(q.items, it)
	}
}

// Encode returns the query text. The delimiters inside keys and values are always encoded,
// '+' is left as is and '#' is encoded only with [EncodeDelimiters].
func (q *Query) Encode(opts ComponentFormattingOptions) string {
	if q.IsEmpty() {
		return ""
	}

	v, p := q.Delimiters()
	mods := []recode.Modification{
		recode.LeaveChar('+'),
		encode(p),
		encode(v),
		decode('#'),
	}
	if opts&EncodeDelimiters != 0 {
		mods[3] = encode('#')
	}
	ro := opts.recode()

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, it := range q.items {
		if i > 0 {
			sb.WriteByte(p)
		}
		sb.WriteString(recode.String(it.Key, ro, mods))
		if it.NoValue {
			continue
		}
		sb.WriteByte(v)
		sb.WriteString(recode.String(it.Value, ro, mods))
	}
	return sb.String()
}

// String returns the pretty decoded query text.
func (q *Query) String() string {
	if q == nil {
		return ""
	}
	return q.Encode(PrettyDecoded)
}

// toUser renders a stored key or value for the caller.
func (q *Query) toUser(s string, opts ComponentFormattingOptions) string {
	if opts&componentMask == PrettyDecoded {
		return s
	}
	var mods []recode.Modification
	if opts&EncodeDelimiters != 0 {
		v, p := q.Delimiters()
		mods = []recode.Modification{encode(p), encode(v), encode('#')}
	}
	return recode.String(s, opts.recode(), mods)
}

// IsEmpty reports whether q has no items.
func (q *Query) IsEmpty() bool {
	return q == nil || len(q.items) == 0
}

// Len returns the number of items.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Has reports whether an item with key exists.
func (q *Query) Has(key string) bool {
	if q == nil {
		return false
	}
	key = q.fromUser(key, q.storageMods())
	return slices.ContainsFunc(q.items, func(it QueryItem) bool { return it.Key == key })
}

// Add appends an item. Key and value are taken in the tolerant encoded form.
func (q *Query) Add(key, value string) {
	mods := q.storageMods()
	q.items = append(q.items, QueryItem{Key: q.fromUser(key, mods), Value: q.fromUser(value, mods)})
}

// Value returns the value of the first item with key.
func (q *Query) Value(key string, opts ComponentFormattingOptions) (string, bool) {
	if q == nil {
		return "", false
	}
	key = q.fromUser(key, q.storageMods())
	for _, it := range q.items {
		if it.Key == key {
			return q.toUser(it.Value, opts), true
		}
	}
	return "", false
}

// AllValues returns the values of every item with key in order.
func (q *Query) AllValues(key string, opts ComponentFormattingOptions) []string {
	if q == nil {
		return nil
	}
	key = q.fromUser(key, q.storageMods())
	var vals []string
	for _, it := range q.items {
		if it.Key == key {
			vals = append(vals, q.toUser(it.Value, opts))
		}
	}
	return vals
}

// Remove removes the first item with key.
func (q *Query) Remove(key string) {
	key = q.fromUser(key, q.storageMods())
	if i := slices.IndexFunc(q.items, func(it QueryItem) bool { return it.Key == key }); i >= 0 {
		q.items = slices.Delete(q.items, i, i+1)
	}
}

// RemoveAll removes every item with key.
func (q *Query) RemoveAll(key string) {
	key = q.fromUser(key, q.storageMods())
	q.items = slices.DeleteFunc(q.items, func(it QueryItem) bool { return it.Key == key })
}

// Items returns a copy of the items rendered with opts.
func (q *Query) Items(opts ComponentFormattingOptions) []QueryItem {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	items := make([]QueryItem, len(q.items))
	for i, it := range q.items {
		items[i] = QueryItem{Key: q.toUser(it.Key, opts), Value: q.toUser(it.Value, opts), NoValue: it.NoValue}
	}
	return items
}

// SetItems replaces the items. Keys and values are taken in the tolerant encoded form.
func (q *Query) SetItems(items []QueryItem) {
	mods := q.storageMods()
	q.items = q.items[:0]
	for _, it := range items {
		it.Key = q.fromUser(it.Key, mods)
		if it.NoValue {
			it.Value = ""
		} else {
			it.Value = q.fromUser(it.Value, mods)
		}
		q.items = append(q.items, it)
	}
}

// Clear removes all items. The delimiters are kept.
func (q *Query) Clear() {
	q.items = q.items[:0]
}

// Clone returns a deep copy of q.
func (q *Query) Clone() *Query {
	if q == nil {
		return nil
	}
	q2 := *q
	q2.items = slices.Clone(q.items)
	return &q2
}

// Equal reports whether q and val have the same delimiters and items. val may be a Query or *Query.
func (q *Query) Equal(val any) bool {
	var other *Query
	switch v := val.(type) {
	case Query:
		other = &v
	case *Query:
		other = v
	default:
		return false
	}
	if q == nil || other == nil {
		return q.IsEmpty() && other.IsEmpty()
	}

	v1, p1 := q.Delimiters()
	v2, p2 := other.Delimiters()
	return v1 == v2 && p1 == p2 && slices.Equal(q.items, other.items)
}
