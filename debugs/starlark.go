package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/tmsim/runs"
	"github.com/reusee/tmsim/turing"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts tap globals.
// Configurations and run bookkeeping become dicts with lower case keys,
// the other simulator types become their text form.
func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case []byte:
		return starlark.Bytes(v)

	case turing.Configuration:
		return configurationDict(v)

	case runs.Last:
		return dict(
			"state", starlark.String(v.State),
			"transition", starlark.MakeInt(v.Transition),
			"config", configurationDict(v.Config),
		)

	case runs.Outcome:
		return starlark.String(v.String())

	case turing.Hash, turing.Tape, turing.Move,
		turing.PatternField, turing.WriteField, turing.Transition:
		return starlark.String(v.(fmt.Stringer).String())

	}

	return reflectValue(reflect.ValueOf(v))
}

func configurationDict(c turing.Configuration) *starlark.Dict {
	tapes := make([]starlark.Value, len(c.Tapes))
	for i, tape := range c.Tapes {
		tapes[i] = starlark.String(tape.String())
	}
	heads := make([]starlark.Value, len(c.Heads))
	for i, head := range c.Heads {
		heads[i] = starlark.MakeInt(head)
	}
	return dict(
		"state", starlark.String(c.State),
		"tapes", starlark.NewList(tapes),
		"heads", starlark.NewList(heads),
		"hash", starlark.String(c.Hash().Short()),
	)
}

func dict(kvs ...any) *starlark.Dict {
	d := starlark.NewDict(len(kvs) / 2)
	for i := 0; i+1 < len(kvs); i += 2 {
		d.SetKey(starlark.String(kvs[i].(string)), kvs[i+1].(starlark.Value))
	}
	return d
}

func reflectValue(value reflect.Value) starlark.Value {
	switch value.Kind() {

	case reflect.Invalid:
		return starlark.None

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %v", value.Type()))
}
