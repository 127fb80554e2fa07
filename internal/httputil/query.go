package httputil

import (
	"net/url"
	"reflect"
	"strings"
)

// GetURLFields checks which query parameters are set.
//
// queryFields contains the names of all fields that can be passed to
// a gorm Where statement directly. gorm takes them as []any.
//
// setFields contains the names of all fields set in the query, which
// allows filtering for zero values without pointer fields.
//
// A field tagged with filterField:"false" is only reported in setFields
// since it is handled by explicit logic in the controller.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param := field.Tag.Get("form")

		if param == "" || !query.Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// fieldsMatching returns the names of the struct fields of resource
// whose tag value satisfies match. Tag options like ",omitempty" are ignored.
func fieldsMatching(resource any, tagName string, match func(string) bool) []any {
	var fields []any

	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		tag, _, _ := strings.Cut(field.Tag.Get(tagName), ",")

		if tag != "" && tag != "-" && match(tag) {
			fields = append(fields, field.Name)
		}
	}

	return fields
}
