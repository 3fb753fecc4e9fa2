package kvstore

import (
	"encoding/json"
	"reflect"
)

// decodeInto unmarshals raw into out, but only commits the result when the
// whole blob decodes cleanly. A corrupt or mistyped blob must not leave out
// half-filled, because out carries the caller's fallback value.
func decodeInto(raw []byte, out any) {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return
	}

	scratch := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		return
	}

	target.Elem().Set(scratch.Elem())
}
