package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// Columns lists the db-tagged columns of a table model in field order.
func Columns(model any) ([]string, error) {
	fields, err := modelFields(model)
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.column
	}
	return cols, nil
}

// MustColumns is Columns for package-level column lists.
func MustColumns(model any) []string {
	cols, err := Columns(model)
	if err != nil {
		panic(err)
	}
	return cols
}

// InsertModel renders a single-row insert from the db tags of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	fields, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}

	b := InsertInto(table).Suffix(suffix)
	row := make([]any, len(fields))
	for i, f := range fields {
		b.columns = append(b.columns, f.column)
		row[i] = f.value
	}
	return b.Values(row...).ToSQL()
}

type modelField struct {
	column string
	value  any
}

func modelFields(model any) ([]modelField, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}

	typ := value.Type()
	out := make([]modelField, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		out = append(out, modelField{column: column, value: value.Field(i).Interface()})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return out, nil
}
