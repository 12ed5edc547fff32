package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/gltf-insight/animctl/client/rpc"
	jsoniter "github.com/json-iterator/go"
)

var ErrServerError = errors.New("server reported an error")

var prettyConfig = jsoniter.Config{IndentionStep: 2}.Froze()

// FormatResponse re-indents JSON replies when pretty is set. Member order is
// kept; anything that is not JSON comes back unchanged.
func FormatResponse(text string, pretty bool) string {
	if !pretty || !jsoniter.Valid([]byte(text)) {
		return text
	}

	iter := prettyConfig.BorrowIterator([]byte(text))
	defer prettyConfig.ReturnIterator(iter)
	stream := prettyConfig.BorrowStream(nil)
	defer prettyConfig.ReturnStream(stream)

	copyValue(iter, stream)
	if (iter.Error != nil && !errors.Is(iter.Error, io.EOF)) || stream.Error != nil {
		return text
	}
	return string(stream.Buffer())
}

func copyValue(iter *jsoniter.Iterator, stream *jsoniter.Stream) {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		stream.WriteObjectStart()
		first := true
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(field)
			copyValue(iter, stream)
			return true
		})
		stream.WriteObjectEnd()
	case jsoniter.ArrayValue:
		stream.WriteArrayStart()
		first := true
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			if !first {
				stream.WriteMore()
			}
			first = false
			copyValue(iter, stream)
			return true
		})
		stream.WriteArrayEnd()
	default:
		stream.WriteRaw(string(iter.SkipAndReturnBytes()))
	}
}

// CheckResponse interprets a reply as JSON-RPC and fails if it carries an
// error member.
func CheckResponse(text string) error {
	resp, err := rpc.DecodeResponse(text)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerError, err)
	}
	return nil
}
