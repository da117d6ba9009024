// Package rawjson ties the raw parser and the encoder together into a
// bidirectional typed bridge.
//
// Parsing goes text -> raw.JSON -> typed value: raw.Parse validates the
// text and hands out zero-copy raw.Value handles, and the conversion
// helpers in this package (Bool, Int64, String, Slice, Map, Nullable, ...)
// turn handles into Go values, failing with errors positioned at the exact
// byte of the fault. Rendering goes the other way: any type implementing
// encode.Value emits itself through Render.
//
// # Usage
//
//	type person struct {
//		Name string
//		Age  int64
//	}
//
//	func (p *person) DecodeRawJSON(v raw.Value) error {
//		name, err := v.RequiredMember("name")
//		if err != nil {
//			return err
//		}
//		if p.Name, err = rawjson.String(name); err != nil {
//			return err
//		}
//		age, err := v.RequiredMember("age")
//		if err != nil {
//			return err
//		}
//		p.Age, err = rawjson.Int64(age)
//		return err
//	}
//
//	p, err := rawjson.Parse[person](`{"name":"Alice","age":30}`)
//
// # Related Packages
//
//   - github.com/rawjson-format/go-rawjson/raw - parser and raw value model
//   - github.com/rawjson-format/go-rawjson/encode - formatter
//   - github.com/rawjson-format/go-rawjson/span - error position recovery
package rawjson
