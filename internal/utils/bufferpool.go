package utils

import "github.com/valyala/bytebufferpool"

var bodyPool bytebufferpool.Pool

// GetBuffer takes a buffer for building outbound request bodies.
func GetBuffer() *bytebufferpool.ByteBuffer {
	return bodyPool.Get()
}

// PutBuffer returns a buffer once its bytes are no longer referenced.
func PutBuffer(buf *bytebufferpool.ByteBuffer) {
	bodyPool.Put(buf)
}
