package lvlog

import "sync"

// buffer is a simple growing byte buffer; it satisfies io.Writer so
// formatters can write into it while the logger holds the sink lock.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

func (buf *buffer) Write(p []byte) (int, error) {
	buf.b = append(buf.b, p...)
	return len(p), nil
}

func (buf *buffer) WriteString(s string) (int, error) {
	buf.b = append(buf.b, s...)
	return len(s), nil
}

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 256)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
