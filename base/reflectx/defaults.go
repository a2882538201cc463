// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SetFromDefaultTags sets the values of fields in the given struct
// based on `default:` struct field tags, recursing into embedded
// and nested struct fields. Array and slice fields take a
// space-separated list of element values.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, not %v", v.Kind())
	}
	return setFromDefaultTags(v)
}

func setFromDefaultTags(v reflect.Value) error {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			if err := setFromDefaultTags(fv); err != nil {
				return err
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			return fmt.Errorf("reflectx.SetFromDefaultTags: field %s: %w", f.Name, err)
		}
	}
	return nil
}

// SetFromString sets the given settable value from its string
// representation. It supports strings, bools, integers, floats,
// [time.Duration], and arrays and slices of those separated by spaces.
func SetFromString(v reflect.Value, s string) error {
	if v.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Array:
		fs := strings.Fields(s)
		if len(fs) != v.Len() {
			return fmt.Errorf("expected %d values, got %d in %q", v.Len(), len(fs), s)
		}
		for i, e := range fs {
			if err := SetFromString(v.Index(i), e); err != nil {
				return err
			}
		}
	case reflect.Slice:
		fs := strings.Fields(s)
		sl := reflect.MakeSlice(v.Type(), len(fs), len(fs))
		for i, e := range fs {
			if err := SetFromString(sl.Index(i), e); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
