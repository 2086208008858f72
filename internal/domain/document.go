package domain

// Document is a finished letter: the encoded PDF and its page count.
type Document struct {
	Data  []byte
	Pages int
}
