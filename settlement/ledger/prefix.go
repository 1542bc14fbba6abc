package ledger

// PrefixedKV namespaces keys inside a shared key-value store so ledgers of
// multiple domains can persist side by side in one database.
type PrefixedKV struct {
	kv     KeyValueReaderWriter
	prefix []byte
}

func NewPrefixedKV(kv KeyValueReaderWriter, prefix string) *PrefixedKV {
	return &PrefixedKV{
		kv:     kv,
		prefix: []byte(prefix),
	}
}

func (p *PrefixedKV) GetByKey(key []byte) ([]byte, error) {
	return p.kv.GetByKey(p.key(key))
}

func (p *PrefixedKV) SetByKey(key []byte, value []byte) error {
	return p.kv.SetByKey(p.key(key), value)
}

func (p *PrefixedKV) key(key []byte) []byte {
	k := make([]byte, 0, len(p.prefix)+len(key))
	k = append(k, p.prefix...)
	return append(k, key...)
}
