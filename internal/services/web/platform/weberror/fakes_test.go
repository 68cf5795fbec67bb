package weberror

import (
	"fmt"

	"golang.org/x/text/message"
)

type stubLocalizer map[string]string

func (s stubLocalizer) Sprintf(key message.Reference, args ...any) string {
	keyString, _ := key.(string)
	if value, ok := s[keyString]; ok {
		return fmt.Sprintf(value, args...)
	}
	return keyString
}
