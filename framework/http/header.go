package http

import (
	nethttp "net/http"
	"sort"
)

// Header is an insertion-ordered, single-valued header map. Keys are stored
// in canonical MIME form, so lookups are case-insensitive.
type Header struct {
	keys   []string
	values map[string]string
}

// NewHeader builds a Header from alternating key/value pairs.
//
//	h := gohttp.NewHeader("Content-Type", "application/json", "X-Trace", "abc")
func NewHeader(kv ...string) Header {
	var h Header
	for i := 0; i+1 < len(kv); i += 2 {
		h.Set(kv[i], kv[i+1])
	}
	return h
}

// HeaderFromHTTP takes the first value of every header of src. Keys are
// sorted, since net/http does not keep arrival order.
func HeaderFromHTTP(src nethttp.Header) Header {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var h Header
	for _, k := range keys {
		if vals := src[k]; len(vals) > 0 {
			h.Set(k, vals[0])
		}
	}
	return h
}

// Set stores value under key, keeping the key's original position when it
// already exists.
func (h *Header) Set(key, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}
	k := nethttp.CanonicalHeaderKey(key)
	if _, ok := h.values[k]; !ok {
		h.keys = append(h.keys, k)
	}
	h.values[k] = value
}

// Get returns the value of key, or "".
func (h Header) Get(key string) string {
	return h.values[nethttp.CanonicalHeaderKey(key)]
}

// Lookup returns the value of key and whether it is present.
func (h Header) Lookup(key string) (string, bool) {
	v, ok := h.values[nethttp.CanonicalHeaderKey(key)]
	return v, ok
}

// Keys returns the keys in insertion order.
func (h Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of keys.
func (h Header) Len() int { return len(h.keys) }

// Clone returns an independent copy.
func (h Header) Clone() Header {
	var out Header
	for _, k := range h.keys {
		out.Set(k, h.values[k])
	}
	return out
}

// Map returns the headers as a plain map.
func (h Header) Map() map[string]string {
	out := make(map[string]string, len(h.keys))
	for _, k := range h.keys {
		out[k] = h.values[k]
	}
	return out
}
