package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns extracts all column names from struct "db" tags,
// recursing into embedded structs. Called once per repository at
// construction time, so the reflection cost is paid once.
//
//	cols := ExtractDBColumns[invoice.Invoice]()
//	// ["id", "deletion_mark", "version", "created_at", ...]
func ExtractDBColumns[T any]() []string {
	var zero T
	return columnsOf(reflect.TypeOf(zero))
}

func columnsOf(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			cols = append(cols, columnsOf(field.Type)...)
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

// taggedField is pre-computed metadata for one db-tagged struct field.
type taggedField struct {
	index int
	dbTag string
}

// structMeta caches per-type reflection metadata.
type structMeta struct {
	fields   []taggedField
	embedded []int
}

var metaCache sync.Map // reflect.Type -> *structMeta

func metaOf(t reflect.Type) *structMeta {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := metaCache.Load(t); ok {
		return cached.(*structMeta)
	}

	meta := &structMeta{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.Anonymous {
				meta.embedded = append(meta.embedded, i)
				continue
			}
			tag := field.Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			meta.fields = append(meta.fields, taggedField{index: i, dbTag: tag})
		}
	}

	metaCache.Store(t, meta)
	return meta
}

// StructToMap converts a struct to a column->value map using "db" tags.
// Fields without a tag (or tagged "-") are skipped; embedded structs are
// flattened. Metadata is cached per type, so repeated calls avoid most of
// the reflection cost.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	meta := metaOf(rv.Type())
	res := make(map[string]any, len(meta.fields))

	for _, f := range meta.fields {
		res[f.dbTag] = rv.Field(f.index).Interface()
	}
	for _, idx := range meta.embedded {
		for k, v := range StructToMap(rv.Field(idx).Interface()) {
			res[k] = v
		}
	}
	return res
}
