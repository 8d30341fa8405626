// FILE: lixenwraith/maskconfig/decode.go
package maskconfig

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the object under a flat key into the target struct or
// map. Field names follow json tags. Unlike the typed accessors, Scan
// reports failures as errors, since a caller asking for a whole section
// usually wants to know why it could not be decoded.
func (r *Resolver) Scan(key string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	v, ok := r.member(key)
	if !ok {
		return fmt.Errorf("key not present in document: %s", key)
	}
	obj, ok := v.Object()
	if !ok {
		return fmt.Errorf("key %q does not refer to an object", key)
	}

	data := make(map[string]any, len(obj))
	for k, member := range obj {
		data[k] = member.Interface()
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to decode key %q: %w", key, err)
	}
	return nil
}
