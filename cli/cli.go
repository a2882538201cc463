// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli generates command-line flags for config structs and
// loads their values from defaults, config files, and arguments,
// in that order of increasing precedence.
package cli

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"cogentcore.org/learngl/base/reflectx"
	"github.com/spf13/pflag"
)

// Options contains the options passed to [Config].
type Options struct {

	// AppName is the name of the app, used in the usage message.
	AppName string

	// AppAbout is a description of the app, used in the usage message.
	AppAbout string

	// DefaultFiles are the config files looked for on [Options.SearchPaths]
	// when no --config flag is given. The first one found is used.
	DefaultFiles []string

	// SearchPaths are the directories searched for config files.
	SearchPaths []string
}

// Config sets the fields of the given config object (a pointer to a struct)
// from its `default:` tags, then from the config file named by the --config
// flag or the first of [Options.DefaultFiles] that exists, and finally from
// the command-line flags in args. It returns the path of the config file
// that was opened, if any. It returns [pflag.ErrHelp] when help was requested.
func Config(opts *Options, cfg any, args ...string) (string, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return "", err
	}
	fs, err := NewFlagSet(opts, cfg)
	if err != nil {
		return "", err
	}
	var file string
	fs.StringVar(&file, "config", "", "the config file to read (.toml or .yaml)")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	// file values must not override explicitly set flags,
	// so the changed flags are reapplied after the file is opened
	changed := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		if f.Name != "config" {
			changed[f.Name] = f.Value.String()
		}
	})
	var opened string
	if file != "" {
		opened = file
		err = Open(cfg, file)
	} else {
		opened, err = openFiles(opts, cfg, opts.DefaultFiles...)
	}
	if err != nil {
		return "", err
	}
	for name, val := range changed {
		if err := fs.Set(name, val); err != nil {
			return opened, err
		}
	}
	return opened, nil
}

// NewFlagSet returns a new flag set with one flag for each exported,
// non-struct field of the given config object. Flag names are the
// kebab-case field names unless a `flag:` tag gives them, optionally
// with a one-letter shorthand ("v,verbose"). Usage comes from `desc:`.
func NewFlagSet(opts *Options, cfg any) (*pflag.FlagSet, error) {
	v := reflectx.NonPointerValue(reflect.ValueOf(cfg))
	if v.Kind() != reflect.Struct || !v.CanSet() {
		return nil, fmt.Errorf("cli.NewFlagSet: expected a pointer to a struct, not %T", cfg)
	}
	fs := pflag.NewFlagSet(opts.AppName, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s\n\nUsage of %s:\n", opts.AppAbout, opts.AppName)
		fs.PrintDefaults()
	}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() || f.Type.Kind() == reflect.Struct {
			continue
		}
		name, short := flagName(f)
		if name == "-" {
			continue
		}
		fv := &fieldValue{v: v.Field(i)}
		fl := fs.VarPF(fv, name, short, f.Tag.Get("desc"))
		if f.Type.Kind() == reflect.Bool {
			fl.NoOptDefVal = "true"
		}
	}
	return fs, nil
}

func flagName(f reflect.StructField) (name, short string) {
	tag, ok := f.Tag.Lookup("flag")
	if !ok {
		return kebab(f.Name), ""
	}
	parts := strings.Split(tag, ",")
	if len(parts) == 2 && len(parts[0]) == 1 {
		return parts[1], parts[0]
	}
	return parts[0], ""
}

// kebab converts a Go field name such as GLMajor into gl-major.
func kebab(s string) string {
	rs := []rune(s)
	var sb strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if prevLower || (unicode.IsUpper(rs[i-1]) && nextLower) {
				sb.WriteByte('-')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// fieldValue is a [pflag.Value] for a config struct field.
type fieldValue struct {
	v reflect.Value
}

func (fv *fieldValue) Set(s string) error {
	return reflectx.SetFromString(fv.v, s)
}

func (fv *fieldValue) String() string {
	if !fv.v.IsValid() {
		return ""
	}
	switch fv.v.Kind() {
	case reflect.Array, reflect.Slice:
		elems := make([]string, fv.v.Len())
		for i := range elems {
			elems[i] = fmt.Sprint(fv.v.Index(i).Interface())
		}
		return strings.Join(elems, " ")
	}
	return fmt.Sprint(fv.v.Interface())
}

func (fv *fieldValue) Type() string {
	if fv.v.Kind() == reflect.Array || fv.v.Kind() == reflect.Slice {
		return "list"
	}
	return fv.v.Type().Name()
}
