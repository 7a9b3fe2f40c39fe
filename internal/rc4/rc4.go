// Package rc4 implements the RC4 stream cipher pair used to encrypt and
// decrypt packet payloads once a session is established. Both directions
// are reset to fixed keys on every (re)connect.
package rc4

// OutgoingKey is the fixed RC4 key applied to client-to-server payloads.
var OutgoingKey = [13]byte{0x6a, 0x39, 0x57, 0x0c, 0xc9, 0xde, 0x4e, 0xc7, 0x1d, 0x64, 0x82, 0x18, 0x94}

// IncomingKey is the fixed RC4 key applied to server-to-client payloads.
var IncomingKey = [13]byte{0xc7, 0x93, 0x32, 0xb1, 0x97, 0xf9, 0x2b, 0xa8, 0x5e, 0xd2, 0x81, 0xa0, 0x23}

// Cipher is a single RC4 keystream generator with standard KSA/PRGA state.
type Cipher struct {
	i, j byte
	s    [256]byte
	key  []byte
}

// New builds a Cipher scheduled from key. key must be 1..256 bytes.
func New(key []byte) *Cipher {
	if len(key) == 0 || len(key) > 256 {
		panic("rc4: invalid key length")
	}
	c := &Cipher{key: append([]byte(nil), key...)}
	c.schedule()
	return c
}

func (c *Cipher) schedule() {
	for i := 0; i < 256; i++ {
		c.s[i] = byte(i)
	}
	var j byte
	for i := 0; i < 256; i++ {
		j = j + c.s[i] + c.key[i%len(c.key)]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}
	c.i = 0
	c.j = 0
}

// Reset restores the cipher to its freshly-keyed state, discarding any
// keystream progress. Called on every (re)connect.
func (c *Cipher) Reset() {
	c.schedule()
}

// XORKeyStream XORs src with the keystream into dst. dst and src may overlap
// entirely (in-place use is the common case in this repo).
func (c *Cipher) XORKeyStream(dst, src []byte) {
	for k, b := range src {
		c.i++
		c.j += c.s[c.i]
		c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
		dst[k] = b ^ c.s[c.s[c.i]+c.s[c.j]]
	}
}

// Pair holds the two independent ciphers for a session: one for outgoing
// traffic, one for incoming. Both are rekeyed to their fixed initial keys
// whenever the session (re)connects.
type Pair struct {
	Outgoing *Cipher
	Incoming *Cipher
}

// NewPair builds a Pair scheduled from the fixed OutgoingKey/IncomingKey.
func NewPair() *Pair {
	return &Pair{
		Outgoing: New(OutgoingKey[:]),
		Incoming: New(IncomingKey[:]),
	}
}

// Reset rekeys both ciphers back to their initial state.
func (p *Pair) Reset() {
	p.Outgoing.Reset()
	p.Incoming.Reset()
}
