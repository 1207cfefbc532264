package service

// PageCache holds rendered public pages for a short TTL. Entries are
// keyed by the caller; a miss returns ok=false rather than an error.
type PageCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
}
